package finalize

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"declaration-corrector/internal/emit"
	"declaration-corrector/internal/naming"
)

// Extension is appended to every output file name.
const Extension = ".kt"

var (
	backtickPattern = regexp.MustCompile("`([^`]+)`")
	partPattern     = regexp.MustCompile(`^_part_(\d+)_(\w+)$`)
	bareName        = regexp.MustCompile(`^\w+$`)
)

// Finalizer holds the per-file tables applied to emitted text.
type Finalizer struct {
	// FileNames maps a logical file name to its output name.
	FileNames map[string]string
	// Imports is the curated import list per output name. Files without an
	// entry get no imports.
	Imports map[string][]string
	// Removes are substrings deleted from every non-import line.
	Removes []string
	// DroppedLines lists, per output name, lines removed after trimming.
	DroppedLines map[string][]string
}

// Default returns the tables used for the generated UE declarations.
func Default() *Finalizer {
	return &Finalizer{
		FileNames: map[string]string{
			"ue":         "UE",
			"_part_0_ue": "UE0",
			"_part_1_ue": "UE1",
			"_part_2_ue": "UE2",
			"_part_3_ue": "UE3",
			"_part_4_ue": "UE4",
		},
		Imports: map[string][]string{
			"UE0": {"org.khronos.webgl.ArrayBuffer", "kotlin.js.Console"},
			"UE2": {
				"org.w3c.dom.AddEventListenerOptions",
				"org.w3c.dom.EventListenerOptions",
				"org.w3c.dom.events.EventListener",
			},
		},
		Removes: []string{"tsstdlib."},
		DroppedLines: map[string][]string{
			"UE0": {"public external var Root: dynamic"},
		},
	}
}

// FileName returns the output name of a logical file, without extension.
// Names missing from the table that follow the "_part_N_name" pattern become
// the upper-cased name followed by N.
func (f *Finalizer) FileName(logical string) string {
	if name, ok := f.FileNames[logical]; ok {
		return name
	}

	if m := partPattern.FindStringSubmatch(logical); m != nil {
		return strings.ToUpper(m[2]) + m[1]
	}

	return logical
}

// Text finalizes the emitted text of the file with the given output name.
// The curated imports follow the header, which ends with the package line or
// at the first emitted import. Text without either gets the imports on top.
func (f *Finalizer) Text(name string, text []byte) []byte {
	var header, body []string

	dropped := f.DroppedLines[name]
	inHeader := true

	for _, line := range strings.Split(string(text), "\n") {
		if strings.HasPrefix(line, "import ") {
			inHeader = false
			continue
		}

		line = f.cleanLine(line)
		if slices.Contains(dropped, strings.TrimSpace(line)) {
			continue
		}

		if !inHeader {
			body = append(body, line)
			continue
		}

		header = append(header, line)

		if strings.HasPrefix(line, "package ") {
			inHeader = false
		}
	}

	if inHeader {
		header, body = nil, header
	}

	parts := make([]string, 0, 3)
	for _, part := range []string{joinLines(header), f.importBlock(name), joinLines(body)} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return []byte(strings.Join(parts, "\n\n") + "\n")
}

func (f *Finalizer) cleanLine(line string) string {
	line = unescape(line)

	for _, r := range f.Removes {
		line = strings.ReplaceAll(line, r, "")
	}

	return line
}

// importBlock renders the curated imports of a file, sorted. Bare names
// without a package are skipped.
func (f *Finalizer) importBlock(name string) string {
	var imports []string

	for _, imp := range f.Imports[name] {
		if imp == "" || (!strings.Contains(imp, ".") && bareName.MatchString(imp)) {
			continue
		}

		imports = append(imports, "import "+imp)
	}

	slices.Sort(imports)

	return strings.Join(slices.Compact(imports), "\n")
}

// unescape removes backticks around identifiers that are not keywords.
func unescape(line string) string {
	return backtickPattern.ReplaceAllStringFunc(line, func(match string) string {
		inner := match[1 : len(match)-1]
		if naming.IsKeyword(inner) {
			return match
		}

		return inner
	})
}

func joinLines(lines []string) string {
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// File is a finalized output file.
type File struct {
	Filename string
	Content  []byte
}

// Files finalizes emitted files in order. It fails when two logical files
// map to the same output name.
func (f *Finalizer) Files(outputs []emit.Output) ([]File, error) {
	seen := make(map[string]string, len(outputs))
	out := make([]File, 0, len(outputs))

	for _, o := range outputs {
		name := f.FileName(o.Name)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("files %s and %s both map to %s", prev, o.Name, name)
		}

		seen[name] = o.Name
		out = append(out, File{Filename: name + Extension, Content: f.Text(name, o.Content)})
	}

	return out, nil
}
