package gl

import "fmt"

// ParseVersion maps a native VERSION string to the API generation.
// It recognizes the forms reported by browsers ("WebGL N.M ..."), by
// ES drivers ("OpenGL ES N.M ...") and bare "N.M" strings.
func ParseVersion(glVer string) (API, error) {
	var major, minor int
	switch {
	case scanVersion(glVer, "WebGL %d.%d", &major, &minor):
		if major >= 2 {
			return WebGL2, nil
		}
		return WebGL1, nil
	case scanVersion(glVer, "OpenGL ES %d.%d", &major, &minor):
		// ES major version v corresponds to WebGL version v - 1.
		if major >= 3 {
			return WebGL2, nil
		}
		return WebGL1, nil
	case scanVersion(glVer, "%d.%d", &major, &minor):
		if major >= 3 {
			return WebGL2, nil
		}
		return WebGL1, nil
	}
	return 0, fmt.Errorf("gl: failed to parse version string %q", glVer)
}

func scanVersion(s, format string, major, minor *int) bool {
	_, err := fmt.Sscanf(s, format, major, minor)
	return err == nil
}
