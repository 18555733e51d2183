package lexpath

// standsAlone reports whether add ignores any base it is joined onto: an
// absolute path, or one carrying its own drive, starts over.
func (g Grammar) standsAlone(add string) bool {
	return add != "" && (g.Abs(add, false) || g.HasDrive(add))
}

// glue concatenates two path pieces with at most one boundary between them:
// a delimiter is synthesized only when the left piece does not already end
// bounded and the right piece does not already open with a delimiter. An
// empty piece leaves the other untouched.
func (g Grammar) glue(a, b string) string {
	if a == "" || b == "" {
		return a + b
	}

	if g.endsBounded(a) || g.isDelim(b[0]) {
		return a + b
	}

	return a + string(g.joinSep(a, b)) + b
}

// Join appends add to base with exactly one separating delimiter. An add
// that stands alone (absolute, or carrying its own drive under [Windows])
// replaces base entirely; an empty piece leaves the other unchanged. A
// synthesized delimiter matches the first delimiter already present in base,
// then add, falling back to the grammar's preferred one.
func (g Grammar) Join(base, add string) string {
	if g.standsAlone(add) {
		return add
	}

	return g.glue(base, add)
}

// AppendJoin is [Grammar.Join] writing into dst.
func (g Grammar) AppendJoin(dst []byte, base, add string) []byte {
	if g.standsAlone(add) {
		return append(dst, add...)
	}

	if base == "" || add == "" {
		dst = append(dst, base...)

		return append(dst, add...)
	}

	dst = append(dst, base...)
	if !g.endsBounded(base) && !g.isDelim(add[0]) {
		dst = append(dst, g.joinSep(base, add))
	}

	return append(dst, add...)
}

// JoinList reassembles a component list as produced by [Grammar.SplitList]:
// the first component verbatim, every further one preceded by exactly one
// delimiter unless the piece before it already ends bounded. Empty
// components are skipped; the synthesized delimiter is the first delimiter
// found in any component, falling back to the grammar's preferred one.
func (g Grammar) JoinList(components []string) string {
	n := 0
	for _, comp := range components {
		n += len(comp) + 1
	}

	return string(g.AppendJoinList(make([]byte, 0, n), components))
}

// AppendJoinList is [Grammar.JoinList] writing into dst.
func (g Grammar) AppendJoinList(dst []byte, components []string) []byte {
	sep := g.listSep(components)

	wrote := false
	bounded := false

	for _, comp := range components {
		if comp == "" {
			continue
		}

		if wrote && !bounded {
			dst = append(dst, sep)
		}

		dst = append(dst, comp...)
		wrote = true
		bounded = g.endsBounded(comp)
	}

	return dst
}

// listSep returns the delimiter synthesized between list components: the
// first delimiter byte occurring in any component, else the grammar's
// preferred one.
func (g Grammar) listSep(components []string) byte {
	for _, comp := range components {
		for i := 0; i < len(comp); i++ {
			if g.isDelim(comp[i]) {
				return comp[i]
			}
		}
	}

	return g.preferred
}

// JoinDrive prefixes rest with a drive designator, synthesizing the boundary
// delimiter a UNC prefix needs before a relative remainder; a letter drive's
// colon bounds it already. Inverse of [Grammar.SplitDrive] over its outputs.
func (g Grammar) JoinDrive(drive, rest string) string {
	return g.glue(drive, rest)
}

// JoinDirPath appends a filename to a directory part under the boundary
// rules of [Grammar.DirPath]: one delimiter between them unless dir already
// ends bounded. Inverse of [Grammar.SplitDirPath] over its outputs.
func (g Grammar) JoinDirPath(dir, name string) string {
	return g.glue(dir, name)
}

// JoinFilename is [Grammar.JoinDirPath] with the filename first, mirroring
// [Grammar.SplitFilename].
func (g Grammar) JoinFilename(name, rest string) string {
	return g.glue(rest, name)
}

// JoinAll reassembles a [Parts] decomposition into a path; it is the
// byte-exact inverse of [Grammar.SplitAll]. Unlike the other composers it
// never synthesizes boundary bytes: Parts carries its own.
func (g Grammar) JoinAll(parts Parts) string {
	n := len(parts.Drive) + len(parts.Dir) + len(parts.Stem) + len(parts.Ext) + 1

	return string(g.AppendJoinAll(make([]byte, 0, n), parts))
}

// AppendJoinAll is [Grammar.JoinAll] writing into dst.
func (g Grammar) AppendJoinAll(dst []byte, parts Parts) []byte {
	dst = append(dst, parts.Drive...)
	dst = append(dst, parts.Dir...)
	dst = append(dst, parts.Stem...)

	if parts.HasExt {
		dst = append(dst, '.')
		dst = append(dst, parts.Ext...)
	}

	return dst
}
