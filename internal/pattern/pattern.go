// Package pattern provides the pure text extractors that recognize commit
// links, bot commands, and build watcher reassignments in chat messages.
// Extraction never fails: text that does not match a grammar is simply
// treated as not containing anything of interest.
package pattern

import (
	"regexp"
	"strings"
)

// Reference is a recognized commit link pointing at a named repository.
type Reference struct {
	Repository string
	Hash       string
}

// Command is a bot command parsed out of a message line.
type Command struct {
	Name     string
	Argument string
}

// commitRefRe matches <host>/<org>/<repository>/(commit|blob)/<40-hex-hash>.
// The trailing alternation rejects hashes longer than 40 characters; shorter
// ones fail the fixed-length class. Scanned per line.
var commitRefRe = regexp.MustCompile(
	`[\w.-]+/[\w.-]+/([\w.-]+)/(?:commit|blob)/([0-9a-fA-F]{40})(?:[^0-9a-fA-F]|$)`,
)

// CommitReferences scans each line of text for commit links. Every matching
// line yields one reference, in line order; non-matching lines are skipped.
func CommitReferences(text string) []Reference {
	var refs []Reference
	for _, line := range strings.Split(text, "\n") {
		m := commitRefRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		refs = append(refs, Reference{Repository: m[1], Hash: m[2]})
	}
	return refs
}

// Extractor holds the grammars that depend on the configured bot name.
type Extractor struct {
	command *regexp.Regexp
	watcher *regexp.Regexp
}

// NewExtractor compiles the bot-name-dependent grammars.
func NewExtractor(botName string) *Extractor {
	name := regexp.QuoteMeta(botName)
	return &Extractor{
		// <bot-name>:<word><whitespace><rest-of-line>
		command: regexp.MustCompile(`^\s*` + name + `:\s*(\w+)(?:\s+(.*\S))?\s*$`),
		// <bot-name> ... build watcher ... <@mention>
		watcher: regexp.MustCompile(`(?i)\b` + name + `\b[:,]?\s.*\bbuild watcher\b[^<]*<@([A-Za-z0-9]+)>`),
	}
}

// Command scans each line for a bot command. When several lines match, the
// last one wins; that quirk of the scanning order is relied on by callers
// that expect a single command per message.
func (e *Extractor) Command(text string) (Command, bool) {
	var cmd Command
	var found bool
	for _, line := range strings.Split(text, "\n") {
		m := e.command.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		cmd = Command{Name: m[1], Argument: m[2]}
		found = true
	}
	return cmd, found
}

// BuildWatcherMention scans for a build watcher reassignment and returns the
// mentioned platform user id.
func (e *Extractor) BuildWatcherMention(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		m := e.watcher.FindStringSubmatch(line)
		if m != nil {
			return m[1], true
		}
	}
	return "", false
}
