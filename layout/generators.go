package layout

// mazeMask returns the walls of a perfect maze. Rooms sit on even
// coordinates; everything else starts as wall and the backtracker knocks
// out the wall between each pair of rooms it links.
func mazeMask(n int, cfg config) [][]bool {
	mask := newMask(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			mask[r][c] = r%2 == 1 || c%2 == 1
		}
	}

	type room struct{ r, c int }
	steps := [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}
	visited := make(map[room]bool)
	stack := []room{{0, 0}}
	visited[room{0, 0}] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var next []room
		for _, d := range steps {
			nb := room{cur.r + d[0], cur.c + d[1]}
			if nb.r < 0 || nb.r >= n || nb.c < 0 || nb.c >= n || visited[nb] {
				continue
			}
			next = append(next, nb)
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		nb := next[cfg.rng.Intn(len(next))]
		mask[(cur.r+nb.r)/2][(cur.c+nb.c)/2] = false
		visited[nb] = true
		stack = append(stack, nb)
	}
	return mask
}

// scatterMask marks each cell independently with probability cfg.density,
// drawing in row-major order.
func scatterMask(n int, cfg config) [][]bool {
	mask := newMask(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			mask[r][c] = cfg.rng.Float64() < cfg.density
		}
	}
	return mask
}

// wallsMask draws the border ring and a vertical wall on every fourth
// column, each pierced by one random gap.
func wallsMask(n int, cfg config) [][]bool {
	mask := newMask(n)
	for i := 0; i < n; i++ {
		mask[0][i], mask[n-1][i] = true, true
		mask[i][0], mask[i][n-1] = true, true
	}
	if n < 3 {
		return mask
	}
	for c := 3; c < n-1; c += 4 {
		gap := 1 + cfg.rng.Intn(n-2)
		for r := 1; r < n-1; r++ {
			mask[r][c] = r != gap
		}
	}
	return mask
}
