package selector

import "testing"

func TestFilter_ExcludesByExtensionDirectoryAndFilename(t *testing.T) {
	cases := map[string]bool{
		"sample/config_file.py":           false,
		"sample/normal_file.js":           false,
		"sample/notes.txt":                false,
		"sample/test_api_keys.py":         true,
		"sample/testing_file.py":          true,
		"sample/unit_test_credentials.py": true,
		"sample/logo.png":                 true,
		"sample/archive.zip":              true,
		"sample/test_directory/config.py": true,
		"sample/tests/db_config.py":       true,
		"vendor/github.com/foo/bar.go":    true,
		"node_modules/left-pad/index.js":  true,
		".git/HEAD":                       true,
	}

	var paths []string
	for p := range cases {
		paths = append(paths, p)
	}
	got := Filter(paths)

	kept := map[string]bool{}
	for _, p := range got {
		kept[p] = true
	}
	for path, wantExcluded := range cases {
		if kept[path] == wantExcluded {
			t.Errorf("path %q: kept=%v, want excluded=%v", path, kept[path], wantExcluded)
		}
	}
}

func TestFilter_IsOrderIndependent(t *testing.T) {
	a := []string{"x.go", "vendor/y.go", "z.png"}
	b := []string{"z.png", "x.go", "vendor/y.go"}

	ra, rb := Filter(a), Filter(b)
	if len(ra) != len(rb) {
		t.Fatalf("order affected result length: %v vs %v", ra, rb)
	}
}
