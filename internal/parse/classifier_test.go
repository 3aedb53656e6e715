package parse

import (
	"errors"
	"maps"
	"slices"
	"sync"
	"testing"
	"time"

	"taskline/internal/dates"
	"taskline/internal/validate"
	"taskline/internal/vocab"
)

type stubDates struct{}

func (stubDates) Parse(input, format string) (int64, error) {
	if input == "notadate" {
		return 0, errors.New("unparseable")
	}
	return 1234567890, nil
}

func newTestClassifier(reports ...string) *Classifier {
	return NewClassifier(vocab.NewRegistry(reports...), WithDateParser(stubDates{}))
}

func mustClassify(t *testing.T, c *Classifier, args ...string) *Invocation {
	t.Helper()
	inv, err := c.Classify(args)
	if err != nil {
		t.Fatalf("Classify(%q): unexpected error: %v", args, err)
	}
	return inv
}

func TestClassify_SequenceThenCommand(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "1", "2", "add", "foo")

	if !slices.Equal(inv.IDs, []int{1, 2}) {
		t.Errorf("expected ids [1 2], got %v", inv.IDs)
	}
	if inv.Command != "add" {
		t.Errorf("expected command add, got %q", inv.Command)
	}
	if inv.Description != "foo" {
		t.Errorf("expected description 'foo', got %q", inv.Description)
	}
}

func TestClassify_AddDisablesSequence(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "add", "1", "foo")

	if inv.Command != "add" {
		t.Errorf("expected command add, got %q", inv.Command)
	}
	if len(inv.IDs) != 0 {
		t.Errorf("expected no ids, got %v", inv.IDs)
	}
	if inv.Description != "1 foo" {
		t.Errorf("expected description '1 foo', got %q", inv.Description)
	}
}

func TestClassify_AddIsCaseInsensitive(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "ADD", "42")
	if inv.Command != "add" {
		t.Errorf("expected command add, got %q", inv.Command)
	}
	if inv.HasID(42) || inv.Description != "42" {
		t.Errorf("expected 42 as description, got ids=%v desc=%q", inv.IDs, inv.Description)
	}
}

func TestClassify_CommandBeforeSequence(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "del", "3,5")
	if inv.Command != "delete" {
		t.Errorf("expected command delete, got %q", inv.Command)
	}
	if !slices.Equal(inv.IDs, []int{3, 5}) {
		t.Errorf("expected ids [3 5], got %v", inv.IDs)
	}
}

func TestClassify_SequenceEligibility(t *testing.T) {
	tests := []struct {
		name string
		args []string
		ids  []int
		desc string
	}{
		{"consecutive ids", []string{"1", "2", "3"}, []int{1, 2, 3}, ""},
		{"word between", []string{"1", "foo", "2"}, []int{1}, "foo 2"},
		{"tag between", []string{"1", "+tag", "2"}, []int{1}, "2"},
		{"attribute between", []string{"1", "pri:H", "2"}, []int{1}, "2"},
		{"ranges merge", []string{"1-3,5", "2"}, []int{1, 2, 3, 5}, ""},
		{"bad range is text", []string{"5-3"}, nil, "5-3"},
		{"number after terminator", []string{"1", "--", "2"}, []int{1}, "2"},
	}

	c := newTestClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := mustClassify(t, c, tt.args...)
			if !slices.Equal(inv.IDs, tt.ids) {
				t.Errorf("expected ids %v, got %v", tt.ids, inv.IDs)
			}
			if inv.Description != tt.desc {
				t.Errorf("expected description %q, got %q", tt.desc, inv.Description)
			}
		})
	}
}

func TestClassify_Terminator(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "--", "+notatag")
	if len(inv.TagsAdd) != 0 {
		t.Errorf("expected no tags, got %v", inv.TagsAdd)
	}
	if inv.Description != "+notatag" {
		t.Errorf("expected description '+notatag', got %q", inv.Description)
	}

	inv = mustClassify(t, newTestClassifier(), "add", "--", "--", "pri:H", "/a/b/")
	if inv.Description != "-- pri:H /a/b/" {
		t.Errorf("expected everything after -- as text, got %q", inv.Description)
	}
	if len(inv.Attributes) != 0 || inv.Substitution != nil {
		t.Error("expected no attributes or substitution after --")
	}
}

func TestClassify_Tags(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "add", "+home", "-work", "+home", "Call", "mom")

	if !slices.Equal(inv.TagsAdd, []string{"home", "home"}) {
		t.Errorf("unexpected tags_add %v", inv.TagsAdd)
	}
	if !slices.Equal(inv.TagsRemove, []string{"work"}) {
		t.Errorf("unexpected tags_remove %v", inv.TagsRemove)
	}
	if inv.Description != "Call mom" {
		t.Errorf("unexpected description %q", inv.Description)
	}
}

func TestClassify_Attributes(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(),
		"add", "PRI:h", "pro:alpha", "project:beta", "fg:bold_r", "due:12/31/2026", "Write", "report")

	want := map[string]string{
		"priority": "H",
		"project":  "beta",
		"fg":       "bold_red",
		"due":      "1234567890",
	}
	if !maps.Equal(inv.Attributes, want) {
		t.Errorf("expected %v, got %v", want, inv.Attributes)
	}
	if inv.Description != "Write report" {
		t.Errorf("unexpected description %q", inv.Description)
	}
}

func TestClassify_UnknownAttributeIsText(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "add", "Meet", "at", "10:30", "foo:bar", "p:x")
	if len(inv.Attributes) != 0 {
		t.Errorf("expected no attributes, got %v", inv.Attributes)
	}
	if inv.Description != "Meet at 10:30 foo:bar p:x" {
		t.Errorf("unexpected description %q", inv.Description)
	}
}

func TestClassify_RejectedValues(t *testing.T) {
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"add", "priority:x"}, validate.ErrInvalidPriority},
		{[]string{"add", "entry:123"}, validate.ErrPrivateAttribute},
		{[]string{"1", "end:5"}, validate.ErrPrivateAttribute},
		{[]string{"add", "due:notadate"}, validate.ErrInvalidDate},
		{[]string{"add", "bg:plaid"}, validate.ErrInvalidColor},
	}

	c := newTestClassifier()
	for _, tt := range tests {
		inv, err := c.Classify(tt.args)
		if !errors.Is(err, tt.want) {
			t.Errorf("Classify(%q): expected %v, got %v", tt.args, tt.want, err)
		}
		if inv != nil {
			t.Errorf("Classify(%q): expected no invocation on failure", tt.args)
		}
	}
}

func TestClassify_Recur(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "add", "recur:weekly", "Water", "plants")
	if inv.Attributes["recur"] != "weekly" {
		t.Errorf("expected recur weekly, got %v", inv.Attributes)
	}

	inv = mustClassify(t, newTestClassifier(), "add", "recur:sometimes", "Water", "plants")
	if _, ok := inv.Attributes["recur"]; ok {
		t.Errorf("expected invalid recurrence to be skipped, got %v", inv.Attributes)
	}
	if inv.Description != "Water plants" {
		t.Errorf("skipped recurrence must not become text, got %q", inv.Description)
	}
}

func TestClassify_Substitution(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "4", "/foo/bar/g", "/a/b/")

	if inv.Substitution == nil {
		t.Fatal("expected a substitution")
	}
	want := Substitution{From: "foo", To: "bar", Global: true}
	if *inv.Substitution != want {
		t.Errorf("expected %+v, got %+v", want, *inv.Substitution)
	}
	if inv.Description != "/a/b/" {
		t.Errorf("expected second substitution as text, got %q", inv.Description)
	}
	if inv.Command != "" {
		t.Errorf("expected no command, got %q", inv.Command)
	}
}

func TestClassify_NotASubstitution(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "1", "/foo/bar")
	if inv.Substitution != nil {
		t.Errorf("expected no substitution, got %+v", inv.Substitution)
	}
	if inv.Description != "/foo/bar" {
		t.Errorf("unexpected description %q", inv.Description)
	}
}

func TestClassify_Commands(t *testing.T) {
	c := newTestClassifier("list", "long")

	tests := []struct {
		args    []string
		command string
		desc    string
	}{
		{[]string{"li"}, "list", ""},
		{[]string{"l", "x"}, "", "l x"},
		{[]string{"d", "x"}, "", "d x"},
		{[]string{"Done", "3"}, "done", ""},
		{[]string{"add", "done"}, "add", "done"},
		{[]string{"buy", "milk"}, "", "buy milk"},
		{[]string{"colors"}, "colors", ""},
	}

	for _, tt := range tests {
		inv := mustClassify(t, c, tt.args...)
		if inv.Command != tt.command {
			t.Errorf("Classify(%q): expected command %q, got %q", tt.args, tt.command, inv.Command)
		}
		if inv.Description != tt.desc {
			t.Errorf("Classify(%q): expected description %q, got %q", tt.args, tt.desc, inv.Description)
		}
	}
}

// A description containing a line break is dropped without failing the
// command. This mirrors the reference behavior, which may be unintended.
func TestClassify_DescriptionWithNewlineIsDropped(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "add", "+tag", "line\nbreak")
	if inv.HasDescription() {
		t.Errorf("expected description dropped, got %q", inv.Description)
	}
	if inv.Command != "add" || len(inv.TagsAdd) != 1 {
		t.Error("other categories must survive a dropped description")
	}
}

func TestClassify_Empty(t *testing.T) {
	inv := mustClassify(t, newTestClassifier())
	if inv.Command != "" || inv.IDs != nil || inv.HasDescription() {
		t.Errorf("expected empty invocation, got %s", inv)
	}
}

func TestClassify_EmptyTokens(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "add", "", "foo")
	if inv.Description != "foo" {
		t.Errorf("expected empty token to contribute nothing, got %q", inv.Description)
	}
}

func TestClassify_DateNormalizationIsIdempotent(t *testing.T) {
	c := NewClassifier(nil, WithDateParser(dates.FormatParser{Location: time.UTC}), WithDateFormat("Y-M-D"))

	first := mustClassify(t, c, "add", "due:2026-12-31", "x")
	due := first.Attributes["due"]
	if due != "1798675200" {
		t.Fatalf("expected epoch 1798675200, got %q", due)
	}

	second := mustClassify(t, c, "add", "due:"+due, "x")
	if second.Attributes["due"] != due {
		t.Errorf("expected %q unchanged, got %q", due, second.Attributes["due"])
	}
}

func TestClassify_DigitsOnlyDateFormat(t *testing.T) {
	c := NewClassifier(nil, WithDateParser(dates.FormatParser{Location: time.UTC}), WithDateFormat("YMD"))

	first := mustClassify(t, c, "add", "due:20261231", "x")
	due := first.Attributes["due"]
	if due != "1798675200" {
		t.Fatalf("expected 20261231 read as a date, got %q", due)
	}

	second := mustClassify(t, c, "add", "due:"+due, "x")
	if second.Attributes["due"] != due {
		t.Errorf("expected %q unchanged, got %q", due, second.Attributes["due"])
	}
}

func TestClassify_ShortNumberIsNotADate(t *testing.T) {
	c := NewClassifier(nil, WithDateParser(dates.FormatParser{Location: time.UTC}))

	_, err := c.Classify([]string{"add", "due:5", "x"})
	if !errors.Is(err, validate.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestClassify_OversizedRangeIsText(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "1-999999999", "done")
	if len(inv.IDs) != 0 {
		t.Errorf("expected no ids, got %d", len(inv.IDs))
	}
	if inv.Command != "done" || inv.Description != "1-999999999" {
		t.Errorf("unexpected invocation %s", inv)
	}
}

func TestClassify_Concurrent(t *testing.T) {
	c := newTestClassifier("list")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv, err := c.Classify([]string{"1-3", "li", "+x", "pri:L"})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if inv.Command != "list" || len(inv.IDs) != 3 {
				t.Errorf("unexpected invocation %s", inv)
			}
		}()
	}
	wg.Wait()
}

func TestInvocation_String(t *testing.T) {
	inv := mustClassify(t, newTestClassifier(), "2", "done", "+a", "pri:m", "/x/y/")
	want := `command=done ids=2 +a priority:M /x/y/`
	if got := inv.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSubstitution_Apply(t *testing.T) {
	s := Substitution{From: "a", To: "o"}
	if got := s.Apply("banana"); got != "bonana" {
		t.Errorf("expected first occurrence replaced, got %q", got)
	}
	s.Global = true
	if got := s.Apply("banana"); got != "bonono" {
		t.Errorf("expected all occurrences replaced, got %q", got)
	}
}
