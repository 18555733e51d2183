package lexpath

// Normalize structurally cleans path. The drive and root marker survive byte
// for byte, duplicate delimiters collapse, "." components drop and ".."
// components truncate the output by one component, never past the root
// marker, a drive or a UNC host-share. Surplus ".." on a relative path
// drops rather than survives, so a normalized path never points above its
// starting point. Delimiters the output needs beyond the root are
// synthesized from the path's first delimiter byte, falling back to the
// grammar's preferred one. Normalize is idempotent; an empty or fully
// dissolved path yields "".
func (g Grammar) Normalize(path string) string {
	return string(g.AppendNormalize(make([]byte, 0, len(path)), path))
}

// AppendNormalize is [Grammar.Normalize] writing into dst.
func (g Grammar) AppendNormalize(dst []byte, path string) []byte {
	if path == "" {
		return dst
	}

	sep := g.activeSep(path)
	base := len(dst)

	// Seed the output with the drive and the root marker, verbatim.
	i := g.driveLen(path)
	dst = append(dst, path[:i]...)

	if i < len(path) && g.isDelim(path[i]) {
		dst = append(dst, path[i])
		i++
	}

	// The seed is the floor: ".." never truncates into it, and the first
	// component past a bare drive attaches without a delimiter.
	floor := len(dst) - base

	for i < len(path) {
		for i < len(path) && g.isDelim(path[i]) {
			i++
		}

		start := i
		for i < len(path) && !g.isDelim(path[i]) {
			i++
		}

		tok := path[start:i]

		switch tok {
		case "", ".":
			continue
		case "..":
			if w := len(dst); w > base+floor {
				for w > base+floor && !g.isDelim(dst[w-1]) {
					w--
				}

				if w > base+floor && g.isDelim(dst[w-1]) {
					w--
				}

				dst = dst[:w]
			}
		default:
			if len(dst)-base > floor {
				dst = append(dst, sep)
			}

			dst = append(dst, tok...)
		}
	}

	return dst
}

// NormalizeCase canonicalizes the byte spelling of path: the identity under
// [Posix]; under [Windows] ASCII letters fold to lowercase and forward
// slashes become backslashes, with all other bytes passing through
// untouched. Already-canonical input comes back without an allocation.
func (g Grammar) NormalizeCase(path string) string {
	if !g.caseFold {
		return path
	}

	i := 0
	for i < len(path) {
		if c := path[i]; ('A' <= c && c <= 'Z') || c == '/' {
			break
		}

		i++
	}

	if i == len(path) {
		return path
	}

	return string(g.AppendNormalizeCase(make([]byte, 0, len(path)), path))
}

// AppendNormalizeCase is [Grammar.NormalizeCase] writing into dst.
func (g Grammar) AppendNormalizeCase(dst []byte, path string) []byte {
	if !g.caseFold {
		return append(dst, path...)
	}

	for i := 0; i < len(path); i++ {
		c := path[i]

		switch {
		case 'A' <= c && c <= 'Z':
			c += 'a' - 'A'
		case c == '/':
			c = '\\'
		}

		dst = append(dst, c)
	}

	return dst
}
