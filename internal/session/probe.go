package session

import "os"

// Descriptor names a file to inspect with Probe.
type Descriptor struct {
	Name string
	File *os.File
}

// ProbeResult records whether a descriptor is an interactive terminal and,
// when it is, the size it reported.
type ProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Usable reports whether Acquire could draw on this descriptor.
func (r ProbeResult) Usable() bool {
	return r.IsTerminal && r.Error == ""
}

// SystemTerminal returns the Terminal backed by the process's real devices.
func SystemTerminal() Terminal {
	return systemTerminal{}
}

// Probe inspects each descriptor in order without changing its mode. A nil
// Terminal uses the system implementation.
func Probe(t Terminal, descriptors ...Descriptor) []ProbeResult {
	if t == nil {
		t = systemTerminal{}
	}
	results := make([]ProbeResult, 0, len(descriptors))
	for _, d := range descriptors {
		entry := ProbeResult{Name: d.Name}
		if d.File == nil {
			entry.Error = ErrNotTerminal.Error()
			results = append(results, entry)
			continue
		}
		fd := int(d.File.Fd())
		if fd >= 0 && t.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := t.GetSize(fd); err == nil {
				entry.Width, entry.Height = width, height
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return results
}
