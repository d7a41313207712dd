package controller

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptPolicy is a wander Policy written in tengo. The script reads the
// global roll and assigns the global dir.
type ScriptPolicy struct {
	compiled *tengo.Compiled
}

func NewScriptPolicy(src []byte) (*ScriptPolicy, error) {
	script := tengo.NewScript(src)
	_ = script.Add("roll", 0.0)
	_ = script.Add("dir", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("controller: compile wander script: %w", err)
	}
	return &ScriptPolicy{compiled: compiled}, nil
}

// Direction runs the script. A failing script stands still.
func (p *ScriptPolicy) Direction(roll float64) int {
	if err := p.compiled.Set("roll", roll); err != nil {
		log.Error("controller: wander script", "err", err)
		return 0
	}
	if err := p.compiled.Run(); err != nil {
		log.Error("controller: wander script", "err", err)
		return 0
	}
	switch dir := p.compiled.Get("dir").Int(); {
	case dir < 0:
		return -1
	case dir > 0:
		return 1
	}
	return 0
}
