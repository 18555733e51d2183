package lexpath

// Abs reports whether path is absolute. Under [Posix] that is any path
// opening with a delimiter. Under [Windows] a path opening with either slash
// style (UNC prefixes included) is absolute; a path opening with a drive
// letter is absolute when a delimiter follows the colon, while with strict
// false the drive prefix alone suffices, so the drive-relative "C:foo" counts
// as well.
func (g Grammar) Abs(path string, strict bool) bool {
	if path == "" {
		return false
	}

	if g.isDelim(path[0]) {
		return true
	}

	if !g.drives {
		return false
	}

	if len(path) >= 2 && isASCIILetter(path[0]) && path[1] == ':' {
		if !strict {
			return true
		}

		return len(path) >= 3 && g.isDelim(path[2])
	}

	return false
}

// HasDrive reports whether path opens with a drive designator: "<letter>:"
// or a UNC host-share prefix. Always false under [Posix].
func (g Grammar) HasDrive(path string) bool {
	return g.driveLen(path) > 0
}

// Validate reports whether path is acceptable to the grammar. The empty path
// and any embedded NUL always fail. Under [Windows] the reserved characters
// fail everywhere outside their structural role, components may not end in a
// space or a period (the "." and ".." components excepted) and strict
// additionally fails components naming a reserved device. Under [Posix]
// strict fails unprintable control bytes. Validate never allocates and never
// modifies its input.
func (g Grammar) Validate(path string, strict bool) bool {
	if path == "" {
		return false
	}

	dl := g.driveLen(path)

	// A letter-drive's colon is structural; a UNC prefix's host and share
	// walk through the component loop like any other component, minus the
	// device-name rule.
	i := 0
	if dl == 2 && path[1] == ':' {
		i = 2
	}

	for i < len(path) {
		for i < len(path) && g.isDelim(path[i]) {
			i++
		}

		start := i
		for i < len(path) && !g.isDelim(path[i]) {
			i++
		}

		if start == i {
			continue
		}

		if !g.validComponent(path[start:i], strict, i <= dl) {
			return false
		}
	}

	return true
}

// ValidateFilename reports whether name is acceptable as a single path
// component: the component rules of [Grammar.Validate], with delimiters (and
// thereby, under [Windows], the colon) always failing, since a filename can
// never contain a structural byte.
func (g Grammar) ValidateFilename(name string, strict bool) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		if g.isDelim(name[i]) {
			return false
		}
	}

	return g.validComponent(name, strict, false)
}

// validComponent checks one delimiter-free component. inDrive marks UNC host
// and share names, which follow the character rules but are no device names.
func (g Grammar) validComponent(comp string, strict, inDrive bool) bool {
	for i := 0; i < len(comp); i++ {
		c := comp[i]

		if c == 0 {
			return false
		}

		if g.drives {
			if windowsReservedChar(c) {
				return false
			}
		} else if strict && (c < 0x20 || c == 0x7F) {
			return false
		}
	}

	if !g.drives {
		return true
	}

	if comp != "." && comp != ".." {
		if last := comp[len(comp)-1]; last == ' ' || last == '.' {
			return false
		}
	}

	if strict && !inDrive && isReservedName(comp) {
		return false
	}

	return true
}
