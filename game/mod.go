// Package game implements the rules of Abalone on a hexagonal board of
// 61 cells addressed as rows and columns 1 to 9.
package game

// Evaluate scores a board from the perspective of the side to move:
// higher is better for that side.
type Evaluate func(*Board) float64
