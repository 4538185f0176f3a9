package webkit

// DefaultVersion is used whenever a release cannot be resolved.
const DefaultVersion = "537.36"

// versionTable maps Android release strings to the WebKit version the stock
// browser shipped with. Keys are exact; Resolver handles patch fallback.
// Source: http://jimbergman.net/webkit-version-in-android-version/
var versionTable = map[string]string{
	"2.1-update1": "530.17",
	"2.2":         "533.1",
	"2.2.1":       "533.1",
	"2.2.2":       "533.1",
	"2.2.3":       "533.1",
	"2.3.2":       "533.1",
	"2.3.3":       "533.1",
	"2.3.4":       "533.1",
	"2.3.5":       "533.1",
	"2.3.6":       "533.1",
	"2.3.7":       "533.1",
	"3.2.1":       "534.13",
	"4.0.1":       "534.30",
	"4.0.2":       "534.30",
	"4.0.3":       "534.30",
	"4.0.4":       "534.30",
	"4.1.1":       "534.30",
	"4.1.2":       "534.30",
	"4.2":         "534.30",
	"4.2.1":       "534.30",
	"4.2.2":       "534.30",
	"4.3":         "534.30",
	"4.4":         DefaultVersion,
	"5.0":         DefaultVersion,
}

// Versions returns a copy of the built-in release to WebKit version table.
func Versions() map[string]string {
	result := make(map[string]string, len(versionTable))
	for k, v := range versionTable {
		result[k] = v
	}
	return result
}
