package main

import (
	"os"
)

type ProfilesCmd struct{}

func (c *ProfilesCmd) Run(g *Globals) error {
	cfg, _, err := g.load()
	if err != nil {
		return err
	}
	renderProfiles(os.Stdout, cfg.AllProfiles(), cfg.Profile)
	return nil
}
