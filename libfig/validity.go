package libfig

// The validity oracle decides whether the newly chosen cell broke the
// background connectivity. For every (A, B) except (8, 8) a 256-entry
// lookup keyed on the cell's 8-neighborhood is exact; (8, 8) falls back to
// a flood fill over the background when the lookup alone would reject.

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}

// initValidityLookup fills the 256-entry table. The key packs the
// neighborhood of the new chosen cell,
//
//	a b c
//	d . f
//	g h i
//
// as n = a | b<<1 | c<<2 | d<<3 | f<<4 | g<<5 | h<<6 | i<<7. The base term
// counts chosen-to-unchosen transitions on the cyclic walk (f c b a d g h i f),
// i.e. the number of local background runs the new cell would separate.
func (gen *Generator) initValidityLookup() {
	if gen.connB == 0 {
		return
	}
	for n := 0; n < 256; n++ {
		a, b, c, d := n&1 != 0, n&2 != 0, n&4 != 0, n&8 != 0
		f, g, h, i := n&16 != 0, n&32 != 0, n&64 != 0, n&128 != 0

		nb := b2i(f && !c) + b2i(c && !b) + b2i(b && !a) + b2i(a && !d) +
			b2i(d && !g) + b2i(g && !h) + b2i(h && !i) + b2i(i && !f)

		if gen.connB == 8 {
			// A chosen corner with both axis neighbors unchosen does not split
			// the background locally: those two cells stay diagonally adjacent.
			nb -= b2i(a && !b && !d) + b2i(c && !b && !f) +
				b2i(g && !d && !h) + b2i(i && !f && !h)
		}
		if gen.connA == 8 && gen.connB == 4 {
			// An unchosen corner squeezed between two chosen axis neighbors is
			// already reachable through an external path; it does not count as
			// a separated run.
			nb -= b2i(!a && b && d) + b2i(!c && b && f) +
				b2i(!g && d && h) + b2i(!i && f && h)
		}

		gen.lookup[n] = nb <= 1
	}
}

// checkValidity tests the current figure's newly chosen cell. Invalidity is
// not an error; the drivers skip the figure and advance.
func (gen *Generator) checkValidity() bool {
	valid := false
	if gen.connB == 0 {
		valid = true
	} else {
		pos := gen.candidates[gen.chosenIndices[gen.level]]
		a := gen.gridChosen.Get(pos + DirUpLeft)
		b := gen.gridChosen.Get(pos + DirUp)
		c := gen.gridChosen.Get(pos + DirUpRight)
		d := gen.gridChosen.Get(pos + DirLeft)
		f := gen.gridChosen.Get(pos + DirRight)
		g := gen.gridChosen.Get(pos + DirDownLeft)
		h := gen.gridChosen.Get(pos + DirDown)
		i := gen.gridChosen.Get(pos + DirDownRight)
		key := b2i(a) | b2i(b)<<1 | b2i(c)<<2 | b2i(d)<<3 |
			b2i(f)<<4 | b2i(g)<<5 | b2i(h)<<6 | b2i(i)<<7

		if gen.lookup[key] {
			valid = true
		} else if gen.a8b8 {
			// For (8,8) the lookup can reject figures that are in fact fine;
			// only a traversal over the background can tell.
			valid = gen.visitBackground()
		}
	}
	if gen.withStats && !valid {
		gen.Stats.Rejected++
	}
	return valid
}

// visitBackground flood-fills the background (candidates that are not
// chosen) from the padding boundary. The figure is valid iff every
// background cell is reached.
func (gen *Generator) visitBackground() bool {
	for k := range gen.visitGrid.words {
		gen.visitGrid.words[k] = gen.gridCandidates.words[k] &^ gen.gridChosen.words[k]
	}

	// gridCandidates also holds every position up to PosOrigin. Positions at
	// or before firstVisit belong to the poisoned padding and need no visit.
	const firstVisit = PosOrigin + DirDownLeft
	for k := 0; k < int(firstVisit)/64; k++ {
		gen.visitGrid.words[k] = 0
	}
	for p := Pos((int(firstVisit) / 64) * 64); p <= firstVisit; p++ {
		gen.visitGrid.Reset(p)
	}

	visitCount := uint32(1)
	gen.visitQueue[0] = firstVisit

	for visitCount > 0 {
		visitCount--
		p := gen.visitQueue[visitCount]
		for _, dir := range dirs8 {
			next := p + dir
			if gen.visitGrid.Get(next) {
				gen.visitGrid.Reset(next)
				gen.visitQueue[visitCount] = next
				visitCount++
			}
		}
	}

	for _, word := range gen.visitGrid.words {
		if word != 0 {
			return false
		}
	}
	return true
}
