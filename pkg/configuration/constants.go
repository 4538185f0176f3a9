package configuration

const (
	// platform facts
	ANDROID_RELEASE           string = "android-release"  // ANDROID_RELEASE (string) sets/returns the OS release, e.g. "4.4.2"
	ANDROID_SDK               string = "android-sdk"      // ANDROID_SDK (int) sets/returns the SDK level of the OS release, e.g. 19
	ANDROID_MODEL             string = "android-model"    // ANDROID_MODEL (string) sets/returns the device model
	ANDROID_BUILD_ID          string = "android-build-id" // ANDROID_BUILD_ID (string) sets/returns the build identifier, e.g. "KOT49H"
	ANDROID_LARGE_FORM_FACTOR string = "android-tablet"   // ANDROID_LARGE_FORM_FACTOR (boolean) sets/returns if the device is tablet-like
	DEBUG                     string = "debug"            // DEBUG (boolean) sets/returns if debugging is enabled or not
	LOG_LEVEL                 string = "log-level"        // LOG_LEVEL (string) return the log level based on zerolog levels (trace,debug,info,...)
	ENV_FILE                  string = "env-file"         // ENV_FILE (string) dotenv file to load platform facts from
)

// alternativeKeys lists the names the platform facts are also known by, mostly
// as exported by device build scripts.
var alternativeKeys = map[string][]string{
	ANDROID_RELEASE:           {"android_version_release", "ro_build_version_release"},
	ANDROID_SDK:               {"android_sdk_int", "ro_build_version_sdk"},
	ANDROID_MODEL:             {"ro_product_model"},
	ANDROID_BUILD_ID:          {"ro_build_id"},
	ANDROID_LARGE_FORM_FACTOR: {"android_is_tablet"},
}
