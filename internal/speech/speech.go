// Package speech triggers text-to-speech playback through whatever TTS
// command the host provides. When none exists every call is a silent
// no-op; absence of the capability never surfaces as an error.
package speech

import (
	"os/exec"
	"regexp"
	"runtime"
	"strings"
	"sync"
)

// utterance is one in-flight playback that can be stopped early.
type utterance interface {
	Stop()
}

// Speaker speaks text aloud, guaranteeing at most one audible
// utterance: every Speak cancels whatever is still playing first.
type Speaker struct {
	mu      sync.Mutex
	start   func(text string) (utterance, error) // nil when no TTS capability exists
	current utterance
}

// New probes the host for a TTS command and returns a Speaker. The
// zero-capability Speaker is valid and silently does nothing.
func New() *Speaker {
	return &Speaker{start: probe()}
}

// NewWithCommand forces a specific TTS binary, for config overrides.
func NewWithCommand(command string) *Speaker {
	if _, err := exec.LookPath(command); err != nil {
		return &Speaker{}
	}
	return &Speaker{start: commandStarter(command)}
}

// Available reports whether the host has a usable TTS capability.
func (s *Speaker) Available() bool {
	return s.start != nil
}

// Speak requests playback of text, superseding any in-flight
// utterance. Fire-and-forget: start failures are swallowed.
func (s *Speaker) Speak(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.Stop()
		s.current = nil
	}
	if s.start == nil || text == "" {
		return
	}
	if u, err := s.start(text); err == nil {
		s.current = u
	}
}

// waiter is the optional blocking side of an utterance.
type waiter interface {
	Wait()
}

// Say speaks text and blocks until playback finishes or is cancelled.
// Meant for one-shot CLI use; the dashboard uses Speak.
func (s *Speaker) Say(text string) {
	s.Speak(text)
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()
	if w, ok := current.(waiter); ok {
		w.Wait()
	}
}

// Cancel stops any in-flight utterance.
func (s *Speaker) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.Stop()
		s.current = nil
	}
}

// ArticleText is the playback text for one article.
func ArticleText(title, summary string) string {
	return title + ". " + summary
}

var (
	urlPattern    = regexp.MustCompile(`https?://\S+`)
	symbolPattern = regexp.MustCompile(`[^\w\s.,!?-]`)
)

// CleanForSpeech strips URLs and non-verbal symbols so the TTS engine
// does not read them out.
func CleanForSpeech(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = symbolPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// probe finds the platform TTS command, preferring the native one.
func probe() func(string) (utterance, error) {
	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{"say"}
	case "windows":
		candidates = []string{"powershell"}
	default:
		candidates = []string{"espeak", "spd-say", "say"}
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c); err == nil {
			return commandStarter(c)
		}
	}
	return nil
}

func commandStarter(command string) func(string) (utterance, error) {
	return func(text string) (utterance, error) {
		var cmd *exec.Cmd
		switch command {
		case "powershell":
			script := "Add-Type -AssemblyName System.Speech; " +
				"(New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak(" + psQuote(text) + ")"
			cmd = exec.Command("powershell", "-NoProfile", "-Command", script)
		default:
			cmd = exec.Command(command, text)
		}
		if err := cmd.Start(); err != nil {
			return nil, err
		}
		u := processUtterance{cmd: cmd, done: make(chan struct{})}
		go func() {
			cmd.Wait()
			close(u.done)
		}()
		return u, nil
	}
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

type processUtterance struct {
	cmd  *exec.Cmd
	done chan struct{}
}

func (p processUtterance) Stop() {
	if p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}
}

func (p processUtterance) Wait() {
	<-p.done
}
