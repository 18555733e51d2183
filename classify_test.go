package lexpath_test

import (
	"testing"

	"github.com/lexpath/lexpath"
	"github.com/stretchr/testify/assert"
)

// TestAbs tests [lexpath.Grammar.Abs] under both grammars and both
// strictness modes.
func TestAbs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		g          lexpath.Grammar
		path       string
		want       bool
		wantStrict bool
	}{
		{name: "Posix_Root", g: lexpath.Posix, path: "/", want: true, wantStrict: true},
		{name: "Posix_Rooted", g: lexpath.Posix, path: "/a/b", want: true, wantStrict: true},
		{name: "Posix_Relative", g: lexpath.Posix, path: "a/b", want: false, wantStrict: false},
		{name: "Posix_Empty", g: lexpath.Posix, path: "", want: false, wantStrict: false},
		{name: "Posix_DriveMeansNothing", g: lexpath.Posix, path: `C:\x`, want: false, wantStrict: false},
		{name: "Posix_BackslashMeansNothing", g: lexpath.Posix, path: `\x`, want: false, wantStrict: false},

		{name: "Windows_DriveRooted", g: lexpath.Windows, path: `C:\foo`, want: true, wantStrict: true},
		{name: "Windows_DriveRootedForward", g: lexpath.Windows, path: "C:/foo", want: true, wantStrict: true},
		{name: "Windows_DriveRelative", g: lexpath.Windows, path: "C:foo", want: true, wantStrict: false},
		{name: "Windows_BareDrive", g: lexpath.Windows, path: "C:", want: true, wantStrict: false},
		{name: "Windows_Unc", g: lexpath.Windows, path: `\\host\share`, want: true, wantStrict: true},
		{name: "Windows_RootedNoDrive", g: lexpath.Windows, path: `\x`, want: true, wantStrict: true},
		{name: "Windows_RootedForward", g: lexpath.Windows, path: "/x", want: true, wantStrict: true},
		{name: "Windows_Relative", g: lexpath.Windows, path: "foo", want: false, wantStrict: false},
		{name: "Windows_DigitNoDrive", g: lexpath.Windows, path: `1:\x`, want: false, wantStrict: false},
		{name: "Windows_Empty", g: lexpath.Windows, path: "", want: false, wantStrict: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.g.Abs(tt.path, false), "lenient absoluteness of %q", tt.path)
			assert.Equal(t, tt.wantStrict, tt.g.Abs(tt.path, true), "strict absoluteness of %q", tt.path)
		})
	}
}

// TestHasDrive tests [lexpath.Grammar.HasDrive] for letter drives, UNC
// prefixes and their absence.
func TestHasDrive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		g    lexpath.Grammar
		path string
		want bool
	}{
		{name: "Windows_BareDrive", g: lexpath.Windows, path: "C:", want: true},
		{name: "Windows_LowercaseDrive", g: lexpath.Windows, path: "c:stuff", want: true},
		{name: "Windows_DriveRooted", g: lexpath.Windows, path: `C:\f`, want: true},
		{name: "Windows_Unc", g: lexpath.Windows, path: `\\host\share\x`, want: true},
		{name: "Windows_UncHostOnly", g: lexpath.Windows, path: `\\host`, want: true},
		{name: "Windows_UncForwardSlashes", g: lexpath.Windows, path: "//host/share", want: true},
		{name: "Windows_Rooted", g: lexpath.Windows, path: "/foo", want: false},
		{name: "Windows_Relative", g: lexpath.Windows, path: "foo", want: false},
		{name: "Windows_DigitColon", g: lexpath.Windows, path: "1:", want: false},
		{name: "Windows_ColonTooLate", g: lexpath.Windows, path: "ab:", want: false},
		{name: "Windows_Empty", g: lexpath.Windows, path: "", want: false},
		{name: "Posix_NeverDriveLetter", g: lexpath.Posix, path: "C:", want: false},
		{name: "Posix_NeverUnc", g: lexpath.Posix, path: "//host/share", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.g.HasDrive(tt.path), "drive presence in %q", tt.path)
		})
	}
}

// TestValidatePosix tests [lexpath.Grammar.Validate] under the POSIX
// grammar, where only empty paths, NUL bytes and (strictly) control bytes
// can fail.
func TestValidatePosix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		want       bool
		wantStrict bool
	}{
		{name: "Success_Plain", path: "/a/b", want: true, wantStrict: true},
		{name: "Success_Spaces", path: "/a b/c d", want: true, wantStrict: true},
		{name: "Success_WindowsJunkIsOpaque", path: `C:\a<b>|?*`, want: true, wantStrict: true},
		{name: "Success_Utf8Bytes", path: "/caf\xc3\xa9", want: true, wantStrict: true},
		{name: "Success_TrailingPeriod", path: "/a/b.", want: true, wantStrict: true},
		{name: "Fail_Empty", path: "", want: false, wantStrict: false},
		{name: "Fail_EmbeddedNul", path: "/a\x00b", want: false, wantStrict: false},
		{name: "Strict_ControlByte", path: "/a\tb", want: true, wantStrict: false},
		{name: "Strict_DelByte", path: "/a\x7fb", want: true, wantStrict: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, lexpath.Posix.Validate(tt.path, false), "lenient validity of %q", tt.path)
			assert.Equal(t, tt.wantStrict, lexpath.Posix.Validate(tt.path, true), "strict validity of %q", tt.path)
		})
	}
}

// TestValidateWindows tests [lexpath.Grammar.Validate] under the Windows
// grammar: reserved characters, trailing space and period rules and the
// strict-only device names.
func TestValidateWindows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		want       bool
		wantStrict bool
	}{
		{name: "Success_DriveRooted", path: `C:\foo\bar.txt`, want: true, wantStrict: true},
		{name: "Success_Unc", path: `\\host\share\file`, want: true, wantStrict: true},
		{name: "Success_MixedDelims", path: `C:/users\x`, want: true, wantStrict: true},
		{name: "Success_DotComponents", path: `C:\a\.\..\b`, want: true, wantStrict: true},
		{name: "Fail_Empty", path: "", want: false, wantStrict: false},
		{name: "Fail_EmbeddedNul", path: "a\x00b", want: false, wantStrict: false},
		{name: "Fail_LessThan", path: "foo<bar", want: false, wantStrict: false},
		{name: "Fail_Pipe", path: "a|b", want: false, wantStrict: false},
		{name: "Fail_Question", path: "x?y", want: false, wantStrict: false},
		{name: "Fail_Star", path: "a*b", want: false, wantStrict: false},
		{name: "Fail_Quote", path: `a"b`, want: false, wantStrict: false},
		{name: "Fail_ColonOutsideDrive", path: `C:\a:b`, want: false, wantStrict: false},
		{name: "Fail_ControlByteAlwaysReserved", path: "C:\\a\tb", want: false, wantStrict: false},
		{name: "Fail_TrailingSpaceComponent", path: `C:\foo \bar`, want: false, wantStrict: false},
		{name: "Fail_TrailingPeriodComponent", path: `C:\foo.\bar`, want: false, wantStrict: false},
		{name: "Fail_TrailingPeriodFilename", path: `C:\foo.`, want: false, wantStrict: false},
		{name: "Fail_UncBadHostChar", path: `\\ho<st\share`, want: false, wantStrict: false},
		{name: "Strict_DeviceName", path: `C:\NUL`, want: true, wantStrict: false},
		{name: "Strict_DeviceNameLowercase", path: `C:\nul.txt`, want: true, wantStrict: false},
		{name: "Strict_DeviceNameCom", path: `C:\COM1`, want: true, wantStrict: false},
		{name: "Strict_DeviceNameLptExt", path: `C:\LPT9.log`, want: true, wantStrict: false},
		{name: "Success_DeviceNameFourLetters", path: `C:\NULL`, want: true, wantStrict: true},
		{name: "Success_DeviceNameComZero", path: `C:\COM0`, want: true, wantStrict: true},
		{name: "Success_DeviceNameDoubleExt", path: `C:\con.tar.gz`, want: true, wantStrict: true},
		{name: "Success_DeviceNameAsUncHost", path: `\\nul\share\f`, want: true, wantStrict: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, lexpath.Windows.Validate(tt.path, false), "lenient validity of %q", tt.path)
			assert.Equal(t, tt.wantStrict, lexpath.Windows.Validate(tt.path, true), "strict validity of %q", tt.path)
		})
	}
}

// TestValidateFilename tests [lexpath.Grammar.ValidateFilename], where
// delimiters of the grammar always fail on top of the component rules.
func TestValidateFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		g          lexpath.Grammar
		filename   string
		want       bool
		wantStrict bool
	}{
		{name: "Posix_Success_Plain", g: lexpath.Posix, filename: "file.txt", want: true, wantStrict: true},
		{name: "Posix_Success_Backslash", g: lexpath.Posix, filename: `a\b`, want: true, wantStrict: true},
		{name: "Posix_Success_Colon", g: lexpath.Posix, filename: "a:b", want: true, wantStrict: true},
		{name: "Posix_Fail_Slash", g: lexpath.Posix, filename: "a/b", want: false, wantStrict: false},
		{name: "Posix_Fail_Empty", g: lexpath.Posix, filename: "", want: false, wantStrict: false},
		{name: "Posix_Fail_Nul", g: lexpath.Posix, filename: "a\x00b", want: false, wantStrict: false},
		{name: "Posix_Strict_ControlByte", g: lexpath.Posix, filename: "a\nb", want: true, wantStrict: false},

		{name: "Windows_Success_Plain", g: lexpath.Windows, filename: "file.txt", want: true, wantStrict: true},
		{name: "Windows_Success_Dot", g: lexpath.Windows, filename: ".", want: true, wantStrict: true},
		{name: "Windows_Success_DotDot", g: lexpath.Windows, filename: "..", want: true, wantStrict: true},
		{name: "Windows_Fail_Backslash", g: lexpath.Windows, filename: `a\b`, want: false, wantStrict: false},
		{name: "Windows_Fail_Slash", g: lexpath.Windows, filename: "a/b", want: false, wantStrict: false},
		{name: "Windows_Fail_Colon", g: lexpath.Windows, filename: "a:b", want: false, wantStrict: false},
		{name: "Windows_Fail_TrailingPeriod", g: lexpath.Windows, filename: "foo.", want: false, wantStrict: false},
		{name: "Windows_Fail_TrailingSpace", g: lexpath.Windows, filename: "foo ", want: false, wantStrict: false},
		{name: "Windows_Strict_DeviceName", g: lexpath.Windows, filename: "con", want: true, wantStrict: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.g.ValidateFilename(tt.filename, false), "lenient validity of %q", tt.filename)
			assert.Equal(t, tt.wantStrict, tt.g.ValidateFilename(tt.filename, true), "strict validity of %q", tt.filename)
		})
	}
}
