// File: registry.go
// Title: Bot Command Registry
// Description: Stores commands by name, resolves aliases and renders usage
//              for every registered grammar.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-08
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-08 v0.1.0: Initial implementation
// - 2026-02-12 v0.1.1: Alias loading from configuration

package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/msto63/botparse/foundation/botcmd/parser"
	bperror "github.com/msto63/botparse/foundation/core/error"
	bplog "github.com/msto63/botparse/foundation/core/log"
)

// Registry holds the commands available to an engine
type Registry struct {
	commands map[string]*Command
	aliases  map[string]string
	logger   *bplog.Logger
	mutex    sync.RWMutex
}

// Options configures a registry
type Options struct {
	Logger *bplog.Logger
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = bplog.GetDefault()
	}
	return &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]string),
		logger:   opts.Logger.WithField("component", "registry"),
	}
}

// Register adds cmd. A second command with the same name is rejected with
// DUPLICATE_COMMAND; a command without name, grammar or handler with
// INVALID_GRAMMAR.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil {
		return invalidGrammar("command cannot be nil", "")
	}
	if err := validateName(cmd.name); err != nil {
		return invalidGrammar(err.Error(), cmd.name)
	}
	if cmd.grammar == nil {
		return invalidGrammar("command has no grammar", cmd.name)
	}
	if cmd.handler == nil {
		return invalidGrammar("command has no handler", cmd.name)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.commands[cmd.name]; exists {
		return bperror.New(fmt.Sprintf("command %s already registered", cmd.name)).
			WithCode(bperror.CodeDuplicateCommand).
			WithOperation("registry.Register").
			WithDetail("command", cmd.name)
	}
	if target, exists := r.aliases[cmd.name]; exists {
		return bperror.New(fmt.Sprintf("command %s collides with alias for %s", cmd.name, target)).
			WithCode(bperror.CodeDuplicateCommand).
			WithOperation("registry.Register").
			WithDetail("command", cmd.name)
	}

	r.commands[cmd.name] = cmd

	r.logger.Debug("Command registered", bplog.Fields{
		"command": cmd.name,
		"usage":   cmd.Usage(parser.RenderOptions{}),
	})
	return nil
}

// MustRegister is like Register but panics on error. Intended for
// package-level command tables.
func (r *Registry) MustRegister(cmds ...*Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

// RegisterAlias makes alias resolve to the command called name. The command
// must already be registered and alias must not shadow a command.
func (r *Registry) RegisterAlias(alias, name string) error {
	if err := validateName(alias); err != nil {
		return bperror.New("invalid alias: "+err.Error()).
			WithCode(bperror.CodeInvalidInput).
			WithOperation("registry.RegisterAlias").
			WithDetail("alias", alias)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.commands[name]; !exists {
		return bperror.New(fmt.Sprintf("alias %s refers to unknown command %s", alias, name)).
			WithCode(bperror.CodeNotFound).
			WithOperation("registry.RegisterAlias").
			WithDetail("alias", alias).
			WithDetail("command", name)
	}
	if _, exists := r.commands[alias]; exists {
		return bperror.New(fmt.Sprintf("alias %s shadows a registered command", alias)).
			WithCode(bperror.CodeDuplicateCommand).
			WithOperation("registry.RegisterAlias").
			WithDetail("alias", alias)
	}

	r.aliases[alias] = name

	r.logger.Debug("Alias registered", bplog.Fields{
		"alias":   alias,
		"command": name,
	})
	return nil
}

// LoadAliases registers every alias -> command entry of aliases in sorted
// alias order and stops at the first failure
func (r *Registry) LoadAliases(aliases map[string]string) error {
	keys := make([]string, 0, len(aliases))
	for alias := range aliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)

	for _, alias := range keys {
		if err := r.RegisterAlias(alias, aliases[alias]); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the command selected by word. Aliases are consulted
// first; an unknown word yields UNKNOWN_COMMAND.
func (r *Registry) Resolve(word string) (*Command, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	name := word
	if target, ok := r.aliases[word]; ok {
		name = target
	}
	cmd, ok := r.commands[name]
	if !ok {
		return nil, bperror.New(fmt.Sprintf("unknown command: %s", word)).
			WithCode(bperror.CodeUnknownCommand).
			WithOperation("registry.Resolve").
			WithDetail("command", word)
	}
	return cmd, nil
}

// Has reports whether word resolves to a command
func (r *Registry) Has(word string) bool {
	_, err := r.Resolve(word)
	return err == nil
}

// Names returns the registered command names in sorted order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Commands returns the registered commands sorted by name
func (r *Registry) Commands() []*Command {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].name < cmds[j].name })
	return cmds
}

// Aliases returns a copy of the alias table
func (r *Registry) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	aliases := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		aliases[k] = v
	}
	return aliases
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.commands)
}

// Usage returns one rendered usage line per command, sorted by name
func (r *Registry) Usage(opts parser.RenderOptions) []string {
	cmds := r.Commands()
	lines := make([]string, len(cmds))
	for i, cmd := range cmds {
		lines[i] = cmd.Usage(opts)
	}
	return lines
}

// Description returns the Union of every command's description, sorted by
// command name
func (r *Registry) Description() parser.Description {
	cmds := r.Commands()
	variants := make([]parser.Description, len(cmds))
	for i, cmd := range cmds {
		variants[i] = cmd.Description()
	}
	return parser.Union{Variants: variants}
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("name %q contains whitespace", name)
	}
	return nil
}

func invalidGrammar(message, name string) error {
	return bperror.New(message).
		WithCode(bperror.CodeInvalidGrammar).
		WithOperation("registry.Register").
		WithDetail("command", name)
}
