// Package affine provides 2D and 3D affine transform constructors over
// linalg.Matrix, as specified in §4.3: translation, scale, rotate,
// rotateAroundPoint, skew, stretchAlongAxis, and the reflect family for 2D;
// translation, scale, rotateX/Y/Z, rotateAroundAxis (Rodrigues), and
// rotateAroundPoint for 3D.
//
// Every constructor returns a 3x3 (2D) or 4x4 (3D) homogeneous matrix.
// Composition order follows §4.3: reading left-to-right as T*R*S*p, S is
// applied first — so composing transforms is ordinary matrix
// multiplication in that order, never reversed by this package.
package affine
