package diff

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Header and marker lines of `git diff` output.
	diffHeaderRegex      = regexp.MustCompile(`^diff --git a/(.+) b/(.+)$`)
	hunkHeaderRegex      = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@(.*)$`)
	oldFileRegex         = regexp.MustCompile(`^--- a/(.+)$`)
	newFileRegex         = regexp.MustCompile(`^\+\+\+ b/(.+)$`)
	oldFileNullRegex     = regexp.MustCompile(`^--- /dev/null$`)
	newFileNullRegex     = regexp.MustCompile(`^\+\+\+ /dev/null$`)
	similarityRegex      = regexp.MustCompile(`^similarity index (\d+)%$`)
	renameFromRegex      = regexp.MustCompile(`^rename from (.+)$`)
	renameToRegex        = regexp.MustCompile(`^rename to (.+)$`)
	binaryFilesRegex     = regexp.MustCompile(`^Binary files .+ and .+ differ$`)
	oldModeRegex         = regexp.MustCompile(`^old mode (\d+)$`)
	newModeRegex         = regexp.MustCompile(`^new mode (\d+)$`)
	indexLineRegex       = regexp.MustCompile(`^index [a-f0-9]+\.\.[a-f0-9]+`)
	newFileModeRegex     = regexp.MustCompile(`^new file mode (\d+)$`)
	deletedFileModeRegex = regexp.MustCompile(`^deleted file mode (\d+)$`)
)

// Parse converts `git diff` output into structured File values. Renames
// carry their similarity index; binary, new, and deleted files are flagged
// rather than given hunks; mode-change and index lines are skipped. Hunk
// bodies keep git's own line numbering on both sides, so the per-kind line
// counts always reconcile with each hunk's header.
func Parse(output string) ([]File, error) {
	if output == "" {
		return nil, nil
	}

	// git terminates its output with a newline. Splitting naively would
	// yield a phantom final element, which the blank-line branch below
	// would book as one more context line than the hunk header declares.
	var files []File
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	var currentFile *File
	var currentHunk *Hunk
	oldNum := 0
	newNum := 0

	for _, line := range lines {

		// Start of a new file diff
		if matches := diffHeaderRegex.FindStringSubmatch(line); matches != nil {
			if currentFile != nil {
				if currentHunk != nil {
					currentFile.Hunks = append(currentFile.Hunks, *currentHunk)
					currentHunk = nil
				}
				files = append(files, *currentFile)
			}

			currentFile = &File{
				OldPath: matches[1],
				NewPath: matches[2],
			}
			currentHunk = nil
			continue
		}

		if currentFile == nil {
			continue
		}

		if oldFileNullRegex.MatchString(line) {
			currentFile.IsNew = true
			currentFile.OldPath = "/dev/null"
			continue
		}
		if matches := oldFileRegex.FindStringSubmatch(line); matches != nil {
			currentFile.OldPath = matches[1]
			continue
		}

		if newFileNullRegex.MatchString(line) {
			currentFile.IsDeleted = true
			currentFile.NewPath = "/dev/null"
			continue
		}
		if matches := newFileRegex.FindStringSubmatch(line); matches != nil {
			currentFile.NewPath = matches[1]
			continue
		}

		if matches := similarityRegex.FindStringSubmatch(line); matches != nil {
			similarity, err := strconv.Atoi(matches[1])
			if err == nil {
				currentFile.Similarity = similarity
				currentFile.IsRenamed = true
			}
			continue
		}

		if matches := renameFromRegex.FindStringSubmatch(line); matches != nil {
			currentFile.OldPath = matches[1]
			currentFile.IsRenamed = true
			continue
		}
		if matches := renameToRegex.FindStringSubmatch(line); matches != nil {
			currentFile.NewPath = matches[1]
			currentFile.IsRenamed = true
			continue
		}

		if binaryFilesRegex.MatchString(line) {
			currentFile.IsBinary = true
			continue
		}

		if newFileModeRegex.MatchString(line) {
			currentFile.IsNew = true
			continue
		}
		if deletedFileModeRegex.MatchString(line) {
			currentFile.IsDeleted = true
			continue
		}

		// Mode changes and index lines are not needed for display.
		if oldModeRegex.MatchString(line) || newModeRegex.MatchString(line) || indexLineRegex.MatchString(line) {
			continue
		}

		if matches := hunkHeaderRegex.FindStringSubmatch(line); matches != nil {
			if currentHunk != nil {
				currentFile.Hunks = append(currentFile.Hunks, *currentHunk)
			}

			oldStart, err := strconv.Atoi(matches[1])
			if err != nil {
				return nil, fmt.Errorf("invalid old start line in hunk header: %s", line)
			}

			oldCount := 1
			if matches[2] != "" {
				oldCount, err = strconv.Atoi(matches[2])
				if err != nil {
					return nil, fmt.Errorf("invalid old count in hunk header: %s", line)
				}
			}

			newStart, err := strconv.Atoi(matches[3])
			if err != nil {
				return nil, fmt.Errorf("invalid new start line in hunk header: %s", line)
			}

			newCount := 1
			if matches[4] != "" {
				newCount, err = strconv.Atoi(matches[4])
				if err != nil {
					return nil, fmt.Errorf("invalid new count in hunk header: %s", line)
				}
			}

			currentHunk = &Hunk{
				OldStart: oldStart,
				OldCount: oldCount,
				NewStart: newStart,
				NewCount: newCount,
				Header:   line,
				Lines: []Line{{
					Kind:    LineHunkHeader,
					Content: strings.TrimSpace(matches[5]),
				}},
			}
			oldNum = oldStart
			newNum = newStart
			continue
		}

		if currentHunk == nil {
			continue
		}

		if len(line) == 0 {
			// A blank source line loses its leading space in some diff
			// producers; treat it as context with empty content.
			currentHunk.Lines = append(currentHunk.Lines, Line{
				Kind:   LineContext,
				OldNum: oldNum,
				NewNum: newNum,
			})
			oldNum++
			newNum++
			continue
		}

		prefix := line[0]
		content := ""
		if len(line) > 1 {
			content = line[1:]
		}

		switch prefix {
		case ' ':
			currentHunk.Lines = append(currentHunk.Lines, Line{
				Kind:    LineContext,
				OldNum:  oldNum,
				NewNum:  newNum,
				Content: content,
			})
			oldNum++
			newNum++
		case '-':
			currentHunk.Lines = append(currentHunk.Lines, Line{
				Kind:    LineDeletion,
				OldNum:  oldNum,
				Content: content,
			})
			currentFile.Deletions++
			oldNum++
		case '+':
			currentHunk.Lines = append(currentHunk.Lines, Line{
				Kind:    LineAddition,
				NewNum:  newNum,
				Content: content,
			})
			currentFile.Additions++
			newNum++
		case '\\':
			// "\ No newline at end of file" marker, not content.
			continue
		default:
			// Anything else ends the hunk body or is noise; skip it.
			continue
		}
	}

	if currentFile != nil {
		if currentHunk != nil {
			currentFile.Hunks = append(currentFile.Hunks, *currentHunk)
		}
		files = append(files, *currentFile)
	}

	return files, nil
}
