package inspect

import (
	"strings"
)

const (
	artWidth   = 17
	artHeight  = 9
	artSymbols = " .o+=*BOX@%&#/^"
	artStart   = 'S'
	artEnd     = 'E'
)

// RandomArt renders digest the way OpenSSH renders host key fingerprints (the "drunken bishop" walk)
func RandomArt(title string, digest []byte) string {
	var field [artHeight][artWidth]int
	x, y := artWidth/2, artHeight/2

	for _, b := range digest {
		for range 4 {
			x = clamp(x+step(b&1 != 0), artWidth-1)
			y = clamp(y+step(b&2 != 0), artHeight-1)
			if field[y][x] < len(artSymbols)-1 {
				field[y][x]++
			}
			b >>= 2
		}
	}

	var out strings.Builder
	out.WriteString(border(title))
	for row := range artHeight {
		out.WriteByte('|')
		for col := range artWidth {
			switch {
			case row == artHeight/2 && col == artWidth/2:
				out.WriteByte(artStart)
			case row == y && col == x:
				out.WriteByte(artEnd)
			default:
				out.WriteByte(artSymbols[field[row][col]])
			}
		}
		out.WriteString("|\n")
	}
	out.WriteString(border(""))
	return out.String()
}

func step(forward bool) int {
	if forward {
		return 1
	}
	return -1
}

func clamp(v, hi int) int {
	return min(max(v, 0), hi)
}

func border(title string) string {
	if len(title) > artWidth-2 {
		title = title[:artWidth-2]
	}
	if title != "" {
		title = "[" + title + "]"
	}
	left := (artWidth - len(title)) / 2
	right := artWidth - len(title) - left
	return "+" + strings.Repeat("-", left) + title + strings.Repeat("-", right) + "+\n"
}
