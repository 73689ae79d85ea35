package resources

// english builds the built-in English table. The lists are intentionally
// modest: enough for the built-in stages and the segmenter; callers with
// richer vocabularies extend them through LoadOverlay.
func english() *Table {
	t := &Table{
		Language:      "en",
		stopWords:     make(map[string]struct{}),
		abbreviations: make(map[string]struct{}),
		synonyms:      make(map[string][]string),
	}

	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "of", "to", "in", "on", "at",
		"for", "with", "by", "from", "as", "is", "are", "was", "were", "be",
		"been", "it", "this", "that", "these", "those", "he", "she", "they",
		"we", "you", "i", "not", "no", "so", "if", "then", "than", "too",
	} {
		t.stopWords[w] = struct{}{}
	}

	for _, a := range []string{
		"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st",
		"etc", "e.g", "i.e", "vs", "cf", "al", "ca", "approx", "a.m", "p.m",
		"inc", "ltd", "co", "corp", "dept", "univ",
		"no", "vol", "fig", "pp", "ch", "sec", "ed",
		"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec",
		"mon", "tue", "wed", "thu", "fri", "sat", "sun",
	} {
		t.abbreviations[a] = struct{}{}
	}

	// Synonym groups. Bidirectional: every variant maps to every other
	// member of its group.
	groups := [][]string{
		{"utilize", "use", "employ"},
		{"demonstrate", "show"},
		{"facilitate", "help", "ease"},
		{"numerous", "many"},
		{"additional", "extra", "more"},
		{"commence", "begin", "start"},
		{"terminate", "end", "stop"},
		{"obtain", "get"},
		{"require", "need"},
		{"assist", "help"},
		{"attempt", "try"},
		{"purchase", "buy"},
		{"sufficient", "enough"},
		{"approximately", "about", "roughly"},
		{"subsequently", "later", "afterwards"},
		{"consequently", "so"},
		{"nevertheless", "still", "even so"},
		{"currently", "now"},
		{"initially", "at first"},
		{"individuals", "people"},
		{"component", "part"},
		{"methodology", "method"},
		{"optimal", "best"},
		{"significant", "notable", "major"},
		{"fundamental", "basic"},
		{"comprehensive", "complete", "thorough"},
		{"implement", "build", "put in place"},
		{"leverage", "use"},
		{"enhance", "improve"},
		{"ensure", "make sure"},
	}
	for _, g := range groups {
		for i, w := range g {
			for j, other := range g {
				if i == j {
					continue
				}
				t.synonyms[w] = appendUnique(t.synonyms[w], other)
			}
		}
	}

	// Formulaic connectors that read machine-written. Longest first so the
	// fillers stage can match greedily.
	t.fillers = []Filler{
		{Phrase: "it is important to note that ", Replacement: ""},
		{Phrase: "it is worth mentioning that ", Replacement: ""},
		{Phrase: "it should be noted that ", Replacement: ""},
		{Phrase: "at the end of the day, ", Replacement: ""},
		{Phrase: "in today's fast-paced world, ", Replacement: ""},
		{Phrase: "in the realm of ", Replacement: "in "},
		{Phrase: "a wide range of ", Replacement: "many "},
		{Phrase: "in order to ", Replacement: "to "},
		{Phrase: "due to the fact that ", Replacement: "because "},
		{Phrase: "despite the fact that ", Replacement: "although "},
		{Phrase: "in the event that ", Replacement: "if "},
		{Phrase: "with regard to ", Replacement: "about "},
		{Phrase: "for the purpose of ", Replacement: "for "},
		{Phrase: "furthermore, ", Replacement: "also, "},
		{Phrase: "moreover, ", Replacement: "and "},
		{Phrase: "additionally, ", Replacement: "also, "},
		{Phrase: "consequently, ", Replacement: "so "},
		{Phrase: "nevertheless, ", Replacement: "still, "},
		{Phrase: "delve into ", Replacement: "look at "},
		{Phrase: "a plethora of ", Replacement: "plenty of "},
		{Phrase: "a myriad of ", Replacement: "many "},
	}

	t.contractions = []Contraction{
		{Full: "do not", Short: "don't"},
		{Full: "does not", Short: "doesn't"},
		{Full: "did not", Short: "didn't"},
		{Full: "is not", Short: "isn't"},
		{Full: "are not", Short: "aren't"},
		{Full: "was not", Short: "wasn't"},
		{Full: "were not", Short: "weren't"},
		{Full: "cannot", Short: "can't"},
		{Full: "can not", Short: "can't"},
		{Full: "could not", Short: "couldn't"},
		{Full: "should not", Short: "shouldn't"},
		{Full: "would not", Short: "wouldn't"},
		{Full: "will not", Short: "won't"},
		{Full: "have not", Short: "haven't"},
		{Full: "has not", Short: "hasn't"},
		{Full: "had not", Short: "hadn't"},
		{Full: "it is", Short: "it's"},
		{Full: "that is", Short: "that's"},
		{Full: "there is", Short: "there's"},
		{Full: "we are", Short: "we're"},
		{Full: "they are", Short: "they're"},
		{Full: "you are", Short: "you're"},
		{Full: "i am", Short: "I'm"},
		{Full: "let us", Short: "let's"},
		{Full: "we will", Short: "we'll"},
		{Full: "you will", Short: "you'll"},
		{Full: "it will", Short: "it'll"},
	}

	return t
}
