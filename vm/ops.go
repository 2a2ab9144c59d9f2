package vm

import "github.com/npillmayer/xyzcalc"

// RegisterSet holds the values bound to the variables x, y and z.
type RegisterSet struct {
	X, Y, Z float64
}

// Load returns the value bound to a variable token.
func (rset RegisterSet) Load(v xyzcalc.Token) float64 {
	switch v.Text {
	case "x":
		return rset.X
	case "y":
		return rset.Y
	case "z":
		return rset.Z
	}
	panic("vm: not a variable: " + v.Text)
}
