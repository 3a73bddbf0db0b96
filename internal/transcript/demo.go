package transcript

// DemoTranscript returns the built-in sample transcript used to seed an
// editing session when no input file is given.
func DemoTranscript() []Segment {
	return []Segment{
		{ID: "seg_1", Start: "00:00:00", End: "00:00:03", Text: "Hello, today we will start with a short introduction."},
		{ID: "seg_2", Start: "00:00:03", End: "00:00:06", Text: "Next we will show how subtitle styling updates in real time."},
		{ID: "seg_3", Start: "00:00:06", End: "00:00:10", Text: "After that you can export the file as SRT or VTT."},
		{ID: "seg_4", Start: "00:00:10", End: "00:00:14", Text: "This interface version demonstrates frontend behavior only."},
		{ID: "seg_5", Start: "00:00:14", End: "00:00:18", Text: "In a real recording, subtitle chunks can become much denser."},
		{ID: "seg_6", Start: "00:00:18", End: "00:00:21", Text: "Use the timeline to jump to exact moments before editing."},
		{ID: "seg_7", Start: "00:00:21", End: "00:00:24", Text: "Each edited line immediately updates the voiceover script."},
		{ID: "seg_8", Start: "00:00:24", End: "00:00:28", Text: "You can switch between original, subtitled, and voiceover preview."},
		{ID: "seg_9", Start: "00:00:28", End: "00:00:31", Text: "Search helps locate segments by phrase when the list is long."},
		{ID: "seg_10", Start: "00:00:31", End: "00:00:35", Text: "The active segment remains synchronized with the playhead."},
		{ID: "seg_11", Start: "00:00:35", End: "00:00:39", Text: "You can also jump directly by entering a timecode."},
		{ID: "seg_12", Start: "00:00:39", End: "00:00:43", Text: "Style controls define subtitle size, position, and background."},
		{ID: "seg_13", Start: "00:00:43", End: "00:00:46", Text: "Voice controls tune the synthetic narration profile and tone."},
		{ID: "seg_14", Start: "00:00:46", End: "00:00:50", Text: "Exports always reflect the latest edited subtitle timeline."},
	}
}
