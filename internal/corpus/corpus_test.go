package corpus

import (
	"reflect"
	"testing"
)

func TestSplit_EmptyInput(t *testing.T) {
	if docs := Split(""); docs != nil {
		t.Errorf("expected nil, got %v", docs)
	}
	if docs := Split("\n\n   \n"); docs != nil {
		t.Errorf("expected nil for blank input, got %v", docs)
	}
}

func TestSplit_SingleBlock(t *testing.T) {
	docs := Split("the cat sat on the mat")
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].StartLine != 1 || docs[0].EndLine != 1 {
		t.Errorf("unexpected span %d-%d", docs[0].StartLine, docs[0].EndLine)
	}
}

func TestSplit_BlankLines(t *testing.T) {
	text := "the cat sat\non the mat\n\nthe dog sat\n\n\ncats and dogs"
	docs := Split(text)
	want := []string{"the cat sat\non the mat", "the dog sat", "cats and dogs"}
	if got := Texts(docs); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if docs[0].StartLine != 1 || docs[0].EndLine != 2 {
		t.Errorf("doc 0 span %d-%d", docs[0].StartLine, docs[0].EndLine)
	}
	if docs[2].StartLine != 7 || docs[2].EndLine != 7 {
		t.Errorf("doc 2 span %d-%d", docs[2].StartLine, docs[2].EndLine)
	}
}

func TestSplit_Headings(t *testing.T) {
	text := "# One\nfirst body\n# Two\nsecond body"
	docs := Split(text)
	want := []string{"# One\nfirst body", "# Two\nsecond body"}
	if got := Texts(docs); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if docs[1].StartLine != 3 {
		t.Errorf("expected second doc to start on line 3, got %d", docs[1].StartLine)
	}
}

func TestSplit_CRLF(t *testing.T) {
	docs := Split("a b\r\n\r\nc d\r\n")
	if got := Texts(docs); !reflect.DeepEqual(got, []string{"a b", "c d"}) {
		t.Errorf("got %q", got)
	}
}
