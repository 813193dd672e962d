package credentials

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/setupcheck/pkg/output"
)

// scriptedPrompter answers prompts from a fixed list and records calls.
type scriptedPrompter struct {
	answers []string
	err     error
	prompts []string
	closes  int
}

func (s *scriptedPrompter) Prompt(label string) (string, error) {
	s.prompts = append(s.prompts, label)
	if s.err != nil {
		return "", s.err
	}
	if len(s.answers) == 0 {
		return "", nil
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedPrompter) Close() error {
	s.closes++
	return nil
}

type stubSource struct {
	values map[string]string
	err    error
	calls  int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Lookup(spec Spec) (string, error) {
	s.calls++
	return s.values[spec.Name], s.err
}

func TestAcquire_AllFromEnvironment(t *testing.T) {
	prompter := &scriptedPrompter{}
	a := &Acquirer{
		Env:      MapEnv{"FIRECRAWL_API_KEY": "fc-123", "GEMINI_API_KEY": " AIza-456 "},
		Prompter: prompter,
	}

	set, err := a.Acquire(DefaultSpecs())
	require.NoError(t, err)

	assert.Empty(t, prompter.prompts)
	assert.Equal(t, 1, prompter.closes)
	assert.Equal(t, "fc-123", set.Get(Firecrawl))
	assert.Equal(t, " AIza-456 ", set.Get(Gemini), "environment values are taken verbatim")
}

func TestAcquire_PromptsOnlyForMissing(t *testing.T) {
	prompter := &scriptedPrompter{answers: []string{""}}
	a := &Acquirer{
		Env:      MapEnv{"FIRECRAWL_API_KEY": "fc-123"},
		Prompter: prompter,
	}

	set, err := a.Acquire(DefaultSpecs())
	require.NoError(t, err)

	require.Len(t, prompter.prompts, 1)
	assert.Equal(t, "Google Gemini API Key (or press Enter to skip): ", prompter.prompts[0])
	assert.Equal(t, 1, prompter.closes)
	assert.Equal(t, "fc-123", set.Get(Firecrawl))
	assert.Equal(t, "", set.Get(Gemini))
	assert.False(t, set.Resolved(Gemini))
}

func TestAcquire_PromptsInOrderAndTrims(t *testing.T) {
	prompter := &scriptedPrompter{answers: []string{"  fc-typed \n", "AIza-typed"}}
	var buf bytes.Buffer
	output.DisableColor()
	a := &Acquirer{
		Env:      MapEnv{"FIRECRAWL_API_KEY": ""},
		Prompter: prompter,
		Out:      output.New(&buf),
	}

	set, err := a.Acquire(DefaultSpecs())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Firecrawl API Key (or press Enter to skip): ",
		"Google Gemini API Key (or press Enter to skip): ",
	}, prompter.prompts)
	assert.Equal(t, "fc-typed", set.Get(Firecrawl))
	assert.Equal(t, "AIza-typed", set.Get(Gemini))
	assert.Contains(t, buf.String(), "API Key Configuration")
	assert.NotContains(t, buf.String(), "fc-typed")
}

func TestAcquire_PromptErrorStillCloses(t *testing.T) {
	prompter := &scriptedPrompter{err: errors.New("tty gone")}
	a := &Acquirer{Env: MapEnv{}, Prompter: prompter}

	_, err := a.Acquire(DefaultSpecs())

	require.ErrorContains(t, err, "prompting for firecrawl: tty gone")
	assert.Equal(t, 1, prompter.closes)
	assert.Len(t, prompter.prompts, 1)
}

func TestAcquire_SourcesBeforePrompt(t *testing.T) {
	src := &stubSource{values: map[string]string{Gemini: "AIza-keyring"}}
	prompter := &scriptedPrompter{}
	a := &Acquirer{
		Env:      MapEnv{"FIRECRAWL_API_KEY": "fc-123"},
		Sources:  []Source{src},
		Prompter: prompter,
	}

	set, err := a.Acquire(DefaultSpecs())
	require.NoError(t, err)

	assert.Empty(t, prompter.prompts)
	assert.Equal(t, 1, src.calls, "sources are only consulted for values the environment lacks")
	assert.Equal(t, "AIza-keyring", set.Get(Gemini))
}

func TestAcquire_SourceErrorFallsThroughToPrompt(t *testing.T) {
	src := &stubSource{err: errors.New("keyring locked")}
	prompter := &scriptedPrompter{answers: []string{"fc-typed", ""}}
	a := &Acquirer{Env: MapEnv{}, Sources: []Source{src}, Prompter: prompter}

	set, err := a.Acquire(DefaultSpecs())
	require.NoError(t, err)

	assert.Len(t, prompter.prompts, 2)
	assert.Equal(t, "fc-typed", set.Get(Firecrawl))
}

func TestAcquire_DefaultPrompterAnswersEmpty(t *testing.T) {
	a := &Acquirer{Env: MapEnv{}}

	set, err := a.Acquire(DefaultSpecs())
	require.NoError(t, err)

	assert.False(t, set.Resolved(Firecrawl))
	assert.False(t, set.Resolved(Gemini))
}

func TestSetString(t *testing.T) {
	set := NewSet(map[string]string{Firecrawl: "fc-secret", Gemini: ""})

	assert.Equal(t, "firecrawl=set gemini=empty", set.String())
	assert.Equal(t, []string{Firecrawl, Gemini}, set.Names())
}

func TestNewSetCopies(t *testing.T) {
	values := map[string]string{Firecrawl: "fc-1"}
	set := NewSet(values)
	values[Firecrawl] = "changed"

	assert.Equal(t, "fc-1", set.Get(Firecrawl))
}
