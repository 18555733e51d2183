package lexpath

// isDelim reports whether c separates path components under the grammar.
func (g Grammar) isDelim(c byte) bool {
	return c == '/' || (g.backslash && c == '\\')
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func asciiUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}

// equalFoldASCII compares s against an already-uppercase pattern without
// allocating.
func equalFoldASCII(s, upper string) bool {
	if len(s) != len(upper) {
		return false
	}

	for i := 0; i < len(s); i++ {
		if asciiUpper(s[i]) != upper[i] {
			return false
		}
	}

	return true
}

// lastDot returns the index of the last '.' in name, or -1.
func lastDot(name string) int {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return i
		}
	}

	return -1
}

// driveLen returns the length of the leading drive designator: 2 for a
// "<letter>:" drive, the host-share prefix length for a UNC path and 0 when
// the path carries no drive. Paths of a grammar without drives never carry
// one.
func (g Grammar) driveLen(path string) int {
	if !g.drives {
		return 0
	}

	if len(path) >= 2 && isASCIILetter(path[0]) && path[1] == ':' {
		return 2
	}

	if len(path) >= 2 && g.isDelim(path[0]) && g.isDelim(path[1]) {
		return g.uncLen(path)
	}

	return 0
}

// uncLen measures a "\\host\share" prefix: the first delimiter past the host
// ends the host, the next one ends the share. Without a share-ending
// delimiter the whole remainder belongs to the prefix.
func (g Grammar) uncLen(path string) int {
	i := 2
	for i < len(path) && !g.isDelim(path[i]) {
		i++
	}

	if i == len(path) {
		return i
	}

	i++ // the host-ending delimiter

	for i < len(path) && !g.isDelim(path[i]) {
		i++
	}

	return i
}

// lastBoundary returns the index of the byte ending the directory part: the
// last delimiter outside the drive prefix, or the drive's final byte when
// only the drive bounds the filename. Returns -1 when the path has neither.
func (g Grammar) lastBoundary(path string) int {
	dl := g.driveLen(path)

	for i := len(path) - 1; i >= dl; i-- {
		if g.isDelim(path[i]) {
			return i
		}
	}

	if dl > 0 {
		return dl - 1
	}

	return -1
}

// activeSep returns the delimiter byte used where one must be synthesized:
// the first delimiter occurring in path, falling back to the grammar's
// preferred one. Synthesized delimiters thereby match the style the input
// already uses.
func (g Grammar) activeSep(path string) byte {
	for i := 0; i < len(path); i++ {
		if g.isDelim(path[i]) {
			return path[i]
		}
	}

	return g.preferred
}

// joinSep is [Grammar.activeSep] over two pieces, the first taking
// precedence.
func (g Grammar) joinSep(a, b string) byte {
	for i := 0; i < len(a); i++ {
		if g.isDelim(a[i]) {
			return a[i]
		}
	}

	return g.activeSep(b)
}

// endsBounded reports whether a path piece already supplies the boundary for
// whatever follows it: a trailing delimiter, or the colon of a bare drive.
func (g Grammar) endsBounded(s string) bool {
	if s == "" {
		return false
	}

	if g.isDelim(s[len(s)-1]) {
		return true
	}

	return g.drives && len(s) == 2 && s[1] == ':' && isASCIILetter(s[0])
}

// windowsReservedChar reports whether c may never appear in a Windows path
// component. Delimiters and the drive colon are structural and judged by the
// scanners, not here.
func windowsReservedChar(c byte) bool {
	if c < 0x20 {
		return true
	}

	switch c {
	case '<', '>', ':', '"', '|', '?', '*':
		return true
	}

	return false
}

// isReservedName reports whether the component names a reserved Windows
// device: CON, PRN, AUX, NUL, COM1-COM9 or LPT1-LPT9, compared without case
// and with any extension after the last dot ignored, so "nul.txt" is as
// reserved as "NUL".
func isReservedName(name string) bool {
	if i := lastDot(name); i > 0 {
		name = name[:i]
	}

	switch len(name) {
	case 3:
		return equalFoldASCII(name, "CON") || equalFoldASCII(name, "PRN") ||
			equalFoldASCII(name, "AUX") || equalFoldASCII(name, "NUL")
	case 4:
		if name[3] < '1' || name[3] > '9' {
			return false
		}

		return equalFoldASCII(name[:3], "COM") || equalFoldASCII(name[:3], "LPT")
	}

	return false
}
