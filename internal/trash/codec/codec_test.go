package codec

import (
	"errors"
	"testing"
)

func homeLayout() Layout {
	return Layout{
		Style:    StyleHome,
		HomeRoot: "/home",
		DirName:  ".TRASHCAN",
		Escape:   '!',
	}
}

func driveLayout() Layout {
	return Layout{
		Style:    StyleDrive,
		HomeRoot: "/home",
		DirName:  "TRASHCAN",
		Escape:   '!',
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		path    string
		want    string
		wantErr error
	}{
		{"home file", homeLayout(), "/home/alice/notes.txt", "alice!notes.txt", nil},
		{"home directory", homeLayout(), "/home/alice/proj", "alice!proj", nil},
		{"home top level", homeLayout(), "/home/alice", "alice", nil},
		{"drive file", driveLayout(), "D:/work/a.txt", "work!a.txt", nil},
		{"drive lower case", driveLayout(), "c:/x/y/z", "x!y!z", nil},
		{"home root itself", homeLayout(), "/home", "", ErrVolumeRoot},
		{"drive root itself", driveLayout(), "D:/", "", ErrVolumeRoot},
		{"outside home root", homeLayout(), "/tmp/a.txt", "", ErrOutsideRoot},
		{"similar prefix", homeLayout(), "/homework/a.txt", "", ErrOutsideRoot},
		{"no drive", driveLayout(), "/home/alice", "", ErrOutsideRoot},
		{"relative", homeLayout(), "alice/notes.txt", "", ErrNotAbsolute},
		{"escape in name", homeLayout(), "/home/alice/hi!.txt", "", ErrEscapeInPath},
		{"escape in directory", homeLayout(), "/home/a!b/c.txt", "", ErrEscapeInPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.layout.Encode(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Encode(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Encode(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		path    string
		want    string
		wantErr bool
	}{
		{"home entry", homeLayout(), "/home/.TRASHCAN/alice!notes.txt", "/home/alice/notes.txt", false},
		{"home entry with suffix", homeLayout(), "/home/.TRASHCAN/alice!notes.txt.1", "/home/alice/notes.txt.1", false},
		{"child of trashed directory", homeLayout(), "/home/.TRASHCAN/alice!proj/a.txt", "/home/alice/proj/a.txt", false},
		{"child name keeps the escape character", homeLayout(), "/home/.TRASHCAN/alice!proj/sub/x!y.txt", "/home/alice/proj/sub/x!y.txt", false},
		{"drive entry", driveLayout(), "D:/TRASHCAN/work!a.txt", "D:/work/a.txt", false},
		{"drive entry under home style", Layout{Style: StyleHome, HomeRoot: "/home", DirName: "TRASHCAN", Escape: '!'}, "E:/TRASHCAN/x!y", "E:/x/y", false},
		{"home entry under drive style", driveLayout(), "/home/TRASHCAN/alice!b", "/home/alice/b", false},
		{"trash directory itself", homeLayout(), "/home/.TRASHCAN", "", true},
		{"trash directory with slash", homeLayout(), "/home/.TRASHCAN/", "", true},
		{"not trashed", homeLayout(), "/home/alice/notes.txt", "", true},
		{"other trash name", homeLayout(), "/home/TRASH/alice!notes.txt", "", true},
		{"outside home", homeLayout(), "/tmp/.TRASHCAN/a", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.layout.Decode(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrNotTrashed) {
					t.Fatalf("Decode(%q) error = %v, want ErrNotTrashed", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	paths := []string{
		"/home/alice/notes.txt",
		"/home/alice/.config/app/settings.yaml",
		"/home/bob",
		"/home/alice/with space/and-dash_underscore.tar.gz",
		"/home/alice/日本語/ファイル.txt",
	}

	l := homeLayout()
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			placed, err := l.Place(p)
			if err != nil {
				t.Fatalf("Place(%q): %v", p, err)
			}
			got, err := l.Decode(placed)
			if err != nil {
				t.Fatalf("Decode(%q): %v", placed, err)
			}
			if got != p {
				t.Errorf("round trip of %q returned %q (placed at %q)", p, got, placed)
			}
		})
	}
}

func TestPlaceScenario(t *testing.T) {
	got, err := homeLayout().Place("/home/alice/notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	if want := "/home/.TRASHCAN/alice!notes.txt"; got != want {
		t.Errorf("Place() = %q, want %q", got, want)
	}
}

func TestTrashDirs(t *testing.T) {
	l := driveLayout()
	l.HomeRoot = "/"

	if got := l.TrashDirs("D:/a/b"); len(got) != 1 || got[0] != "D:/TRASHCAN" {
		t.Errorf("TrashDirs(drive) = %v", got)
	}
	if got := l.TrashDirs("/srv/a"); len(got) != 1 || got[0] != "/TRASHCAN" {
		t.Errorf("TrashDirs(slash) = %v", got)
	}
	if got := l.TrashDirs("relative/a"); len(got) != 0 {
		t.Errorf("TrashDirs(relative) = %v, want none", got)
	}
}

func TestSplitSuffix(t *testing.T) {
	tests := []struct {
		name     string
		wantBase string
		wantN    int
	}{
		{"alice!notes.txt", "alice!notes.txt", 0},
		{"alice!notes.txt.1", "alice!notes.txt", 1},
		{"alice!notes.txt.12", "alice!notes.txt", 12},
		{"alice!notes.txt.01", "alice!notes.txt.01", 0},
		{"alice!notes.txt.", "alice!notes.txt.", 0},
		{".1", ".1", 0},
		{"archive.tar.gz", "archive.tar.gz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, n := SplitSuffix(tt.name)
			if base != tt.wantBase || n != tt.wantN {
				t.Errorf("SplitSuffix(%q) = (%q, %d), want (%q, %d)", tt.name, base, n, tt.wantBase, tt.wantN)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{"home", homeLayout(), false},
		{"drive without home root", Layout{Style: StyleDrive, DirName: "TRASHCAN", Escape: '!'}, false},
		{"empty dir name", Layout{Style: StyleHome, HomeRoot: "/home", Escape: '!'}, true},
		{"dir name with separator", Layout{Style: StyleHome, HomeRoot: "/home", DirName: "a/b", Escape: '!'}, true},
		{"slash escape", Layout{Style: StyleHome, HomeRoot: "/home", DirName: ".T", Escape: '/'}, true},
		{"escape in dir name", Layout{Style: StyleHome, HomeRoot: "/home", DirName: "T!", Escape: '!'}, true},
		{"relative home root", Layout{Style: StyleHome, HomeRoot: "home", DirName: ".T", Escape: '!'}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.layout.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
