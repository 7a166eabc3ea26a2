package agent

// FileSpec describes one file to be materialized on disk. Specs are produced
// in bulk by ImplementPlan and consumed once by WriteFiles; they are plain
// values and are not retained by the agent.
type FileSpec struct {
	// Path is the destination, already prefixed with the output directory.
	Path string
	// Content is the full file text.
	Content string
	// Description is a free-text label for display.
	Description string
}
