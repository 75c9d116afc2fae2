// Package zhconv is the public facade for the Chinese/Japanese script and
// variant conversion engine: a Converter bound to a named
// configuration, a process-wide script detector (ZhoCheck), and
// convenience per-direction functions.
package zhconv

import (
	"fmt"
	"sync"

	"github.com/zhconv/zhconv/config"
	"github.com/zhconv/zhconv/convert"
	"github.com/zhconv/zhconv/dict"
	"github.com/zhconv/zhconv/dict/starter"
	"github.com/zhconv/zhconv/holder"
	"github.com/zhconv/zhconv/internal/diag"
)

// Converter runs the segmentation-and-replacement pipeline for a single
// configuration. The zero value is not usable; construct with New.
type Converter struct {
	mu         sync.Mutex
	configName config.Name
	lastError  error
	holder     *holder.Holder
}

// New constructs a Converter bound to configName ("s2t" if empty). An
// unknown config name does not fail construction: it falls back to "s2t"
// and records the reason in GetLastError.
func New(configName string) *Converter {
	c := &Converter{holder: holder.Global()}
	if configName == "" {
		configName = string(config.Default)
	}
	c.SetConfig(configName)
	return c
}

// SetConfig rebinds the converter to configName, falling back to "s2t" and
// recording the reason in GetLastError if the name is not recognised.
func (c *Converter) SetConfig(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resolved, ok := config.Parse(name)
	if !ok {
		c.configName = config.Default
		c.lastError = fmt.Errorf("unknown config %q, falling back to %q", name, config.Default)
		diag.Log().Warn(c.lastError.Error())
		return
	}
	c.configName = resolved
	c.lastError = nil
}

// GetConfig returns the currently bound config name.
func (c *Converter) GetConfig() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.configName)
}

// GetLastError returns the most recent recorded error (e.g. from an
// unknown config name) and whether one is present.
func (c *Converter) GetLastError() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastError == nil {
		return "", false
	}
	return c.lastError.Error(), true
}

// SetVerboseLogging toggles the process-wide diagnostic channel
// (dictionary load source, fallback transitions). Disabled by default.
func (c *Converter) SetVerboseLogging(v bool) {
	diag.SetVerbose(v)
}

// Convert runs the pipeline for the converter's current config over text,
// applying a punctuation round where applicable when punctuation is true.
func (c *Converter) Convert(text string, punctuation bool) string {
	c.mu.Lock()
	name := c.configName
	c.mu.Unlock()
	return runPipeline(c.holder, name, text, punctuation)
}

func runPipeline(h *holder.Holder, name config.Name, text string, punctuation bool) string {
	rounds := config.Pipeline(name, punctuation)
	for _, r := range rounds {
		group, union, err := resolveRound(h, r)
		if err != nil {
			diag.Log().Warnf("zhconv: round %s unavailable: %s", r.Key, err)
			continue
		}
		text = convert.ApplyRoundParallel(text, group, union)
	}
	return text
}

func resolveRound(h *holder.Holder, r config.Round) ([]*dict.Entry, *starter.Union, error) {
	set, err := h.Dictionaries()
	if err != nil {
		return nil, nil, err
	}
	union, err := h.Union(r.Key)
	if err != nil {
		return nil, nil, err
	}
	group := set.Entries(starter.Groups[r.Key])
	return group, union, nil
}

// GetSupportedConfigs lists the 16 recognised config names.
func GetSupportedConfigs() []string {
	out := make([]string, len(config.Supported))
	for i, n := range config.Supported {
		out[i] = string(n)
	}
	return out
}

// IsSupportedConfig reports whether name (case-insensitive) is a
// recognised config.
func IsSupportedConfig(name string) bool {
	_, ok := config.Parse(name)
	return ok
}

// SetVerboseLogging is the package-level form, affecting every Converter
// and the package-level direction shortcuts.
func SetVerboseLogging(v bool) {
	diag.SetVerbose(v)
}

// ResetDictionaries replaces the process-wide dictionary holder, so that
// the package-level functions and every Converter created afterwards load
// the dict.Set and build StarterUnions afresh from loader on next use.
// A Converter created before the call keeps the holder it was built with.
// Intended for application start-up and tests.
func ResetDictionaries(loader holder.Loader) {
	holder.SetLoader(loader)
}

// ClearUnions discards every cached StarterUnion without reloading the
// dictionary set itself, for test scenarios that need a fresh union build.
func ClearUnions() {
	holder.Global().ClearUnions()
}

func convertWith(key config.Name, punctuation bool, text string) string {
	return runPipeline(holder.Global(), key, text, punctuation)
}

// Convert runs the given config's pipeline over text using the
// process-wide dictionary holder.
func Convert(text, configName string, punctuation bool) string {
	name, ok := config.Parse(configName)
	if !ok {
		diag.Log().Warnf("zhconv: unknown config %q, falling back to %q", configName, config.Default)
		name = config.Default
	}
	return convertWith(name, punctuation, text)
}

// Per-direction shortcuts, one per supported config.
func S2T(text string, punctuation bool) string   { return convertWith(config.S2T, punctuation, text) }
func T2S(text string, punctuation bool) string   { return convertWith(config.T2S, punctuation, text) }
func S2TW(text string, punctuation bool) string  { return convertWith(config.S2TW, punctuation, text) }
func TW2S(text string, punctuation bool) string  { return convertWith(config.TW2S, punctuation, text) }
func S2TWP(text string, punctuation bool) string { return convertWith(config.S2TWP, punctuation, text) }
func TW2SP(text string, punctuation bool) string { return convertWith(config.TW2SP, punctuation, text) }
func S2HK(text string, punctuation bool) string  { return convertWith(config.S2HK, punctuation, text) }
func HK2S(text string, punctuation bool) string  { return convertWith(config.HK2S, punctuation, text) }
func T2TW(text string, punctuation bool) string  { return convertWith(config.T2TW, punctuation, text) }
func T2TWP(text string, punctuation bool) string { return convertWith(config.T2TWP, punctuation, text) }
func TW2T(text string, punctuation bool) string  { return convertWith(config.TW2T, punctuation, text) }
func TW2TP(text string, punctuation bool) string { return convertWith(config.TW2TP, punctuation, text) }
func T2HK(text string, punctuation bool) string  { return convertWith(config.T2HK, punctuation, text) }
func HK2T(text string, punctuation bool) string  { return convertWith(config.HK2T, punctuation, text) }
func T2JP(text string, punctuation bool) string  { return convertWith(config.T2JP, punctuation, text) }
func JP2T(text string, punctuation bool) string  { return convertWith(config.JP2T, punctuation, text) }
