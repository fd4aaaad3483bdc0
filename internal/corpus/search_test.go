package corpus

import "testing"

func sampleEntries() []Entry {
	return []Entry{
		{Name: "pdf", Description: "Work with PDF files", RepoName: "tools"},
		{Name: "pdf-forms", Description: "Fill PDF forms", RepoName: "tools"},
		{Name: "web-search", Description: "Search the web", RepoName: "research"},
		{Name: "summarize", Description: "Summarize pdf documents", RepoName: "research"},
	}
}

func TestSearch_Ranking(t *testing.T) {
	results := Search(sampleEntries(), "pdf", SearchOptions{})

	want := []string{"pdf", "pdf-forms", "summarize"}
	if len(results) != len(want) {
		t.Fatalf("Search() = %d results, want %d", len(results), len(want))
	}
	for i, name := range want {
		if results[i].Name != name {
			t.Errorf("results[%d] = %q, want %q", i, results[i].Name, name)
		}
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	results := Search(sampleEntries(), "PDF", SearchOptions{})
	if len(results) != 3 {
		t.Errorf("Search() = %d results, want 3", len(results))
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	results := Search(sampleEntries(), "", SearchOptions{})
	if len(results) != 4 {
		t.Errorf("Search() = %d results, want 4", len(results))
	}
}

func TestSearch_RepoFilter(t *testing.T) {
	results := Search(sampleEntries(), "", SearchOptions{RepoName: "research"})
	if len(results) != 2 {
		t.Fatalf("Search() = %d results, want 2", len(results))
	}
	for _, e := range results {
		if e.RepoName != "research" {
			t.Errorf("result %q from repo %q", e.Name, e.RepoName)
		}
	}
}

func TestSearch_NoMatch(t *testing.T) {
	if results := Search(sampleEntries(), "kubernetes", SearchOptions{}); len(results) != 0 {
		t.Errorf("Search() = %v, want none", results)
	}
}

func TestFindByName(t *testing.T) {
	matches := FindByName(sampleEntries(), "pdf")
	if len(matches) != 1 || matches[0].Name != "pdf" {
		t.Errorf("FindByName() = %v, want the exact match only", matches)
	}
	if matches := FindByName(sampleEntries(), "ghost"); len(matches) != 0 {
		t.Errorf("FindByName(ghost) = %v, want none", matches)
	}
}
