package lexpath

// Drive returns the leading drive designator ("<letter>:" or a UNC
// "\\host\share" prefix) and whether one is present. A UNC prefix missing
// its share-ending delimiter extends to the end of the path. Always absent
// under [Posix].
func (g Grammar) Drive(path string) (string, bool) {
	dl := g.driveLen(path)
	if dl == 0 {
		return "", false
	}

	return path[:dl], true
}

// DirPath returns the directory part of path, everything before the final
// filename component, and whether a boundary exists at all. The boundary
// delimiter is kept only when it is the root marker, the delimiter directly
// following any drive; a drive bounding the filename by itself stays intact.
// A path without delimiter or drive has no directory part.
func (g Grammar) DirPath(path string) (string, bool) {
	i := g.lastBoundary(path)
	if i < 0 {
		return "", false
	}

	if dl := g.driveLen(path); i == dl || i == dl-1 {
		return path[:i+1], true
	}

	return path[:i], true
}

// Filename returns the final component of path: the suffix after the last
// boundary. It equals path itself when no boundary exists and is empty when
// path ends in a delimiter or a bare drive.
func (g Grammar) Filename(path string) string {
	return path[g.lastBoundary(path)+1:]
}

// Stem returns the filename of path with any extension removed. A dot
// opening the filename marks a hidden file, never an extension.
func (g Grammar) Stem(path string) string {
	name := g.Filename(path)
	if i := lastDot(name); i > 0 {
		return name[:i]
	}

	return name
}

// Ext returns the extension of path's filename, without its dot, and whether
// one is present. A filename ending in a dot carries a present-but-empty
// extension; a dot opening the filename never starts one.
func (g Grammar) Ext(path string) (string, bool) {
	name := g.Filename(path)
	if i := lastDot(name); i > 0 {
		return name[i+1:], true
	}

	return "", false
}

// SplitDrive splits path into its drive designator and the remainder.
// Concatenating the two pieces restores path exactly; the drive piece is
// empty when absent.
func (g Grammar) SplitDrive(path string) (drive, rest string) {
	dl := g.driveLen(path)

	return path[:dl], path[dl:]
}

// SplitDirPath splits path around the last boundary into the directory part,
// boundary byte included, and the filename. Concatenating dir and name
// restores path exactly; without a boundary the dir piece is empty.
func (g Grammar) SplitDirPath(path string) (dir, name string) {
	i := g.lastBoundary(path)

	return path[:i+1], path[i+1:]
}

// SplitFilename is [Grammar.SplitDirPath] with the filename first.
func (g Grammar) SplitFilename(path string) (name, rest string) {
	rest, name = g.SplitDirPath(path)

	return name, rest
}

// Parts is the full decomposition of a path. Drive, Dir, Stem and the
// Ext/HasExt pair are disjoint spans whose concatenation (Drive, Dir, Stem,
// then "."+Ext when HasExt) restores the source path byte for byte. Dir is
// the raw span between drive and filename including its closing boundary,
// unlike the trimmed [Grammar.DirPath] query form. HasExt distinguishes a
// filename ending in a dot (present-but-empty extension) from one without
// any.
type Parts struct {
	Drive  string
	Dir    string
	Stem   string
	Ext    string
	HasExt bool
}

// Filename reassembles the final path component of the decomposition.
func (p Parts) Filename() string {
	if p.HasExt {
		return p.Stem + "." + p.Ext
	}

	return p.Stem
}

// SplitAll fully decomposes path into [Parts]; [Grammar.JoinAll] is its
// byte-exact inverse over any input whatsoever.
func (g Grammar) SplitAll(path string) Parts {
	dl := g.driveLen(path)
	b := g.lastBoundary(path)

	parts := Parts{
		Drive: path[:dl],
		Dir:   path[dl : b+1],
	}

	name := path[b+1:]
	if i := lastDot(name); i > 0 {
		parts.Stem, parts.Ext, parts.HasExt = name[:i], name[i+1:], true
	} else {
		parts.Stem = name
	}

	return parts
}

// SplitList tokenizes path into its component list. For an absolute path the
// first token is the root: the root delimiter, combined with the drive when
// one immediately precedes it, so "C:\" and "\\host\share\" travel as one
// token while a bare drive stands alone. Empty tokens from consecutive
// delimiters are dropped. An empty path yields a nil list.
func (g Grammar) SplitList(path string) []string {
	if path == "" {
		return nil
	}

	var list []string

	i := 0

	switch dl := g.driveLen(path); {
	case dl > 0:
		i = dl
		if i < len(path) && g.isDelim(path[i]) {
			i++
		}

		list = append(list, path[:i])
	case g.isDelim(path[0]):
		list = append(list, path[:1])
		i = 1
	}

	for i < len(path) {
		for i < len(path) && g.isDelim(path[i]) {
			i++
		}

		start := i
		for i < len(path) && !g.isDelim(path[i]) {
			i++
		}

		if start < i {
			list = append(list, path[start:i])
		}
	}

	return list
}
