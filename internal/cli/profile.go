package cli

import (
	"fmt"

	"petboard/internal/utils"
)

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	st, err := ctx.openStore()
	if err != nil {
		return err
	}
	state := st.State()

	fmt.Printf("Name:   %s\n", utils.Sanitize(state.PetName))
	fmt.Printf("Avatar: %s\n", utils.Sanitize(state.PetAvatar))
	fmt.Printf("Theme:  %s\n", state.Theme)
	return nil
}

type ProfileNameCmd struct {
	Name string `arg:"" help:"New pet name."`
}

func (c *ProfileNameCmd) Run(ctx *Context) error {
	st, err := ctx.openStore()
	if err != nil {
		return err
	}
	if err := st.SetPetName(c.Name); err != nil {
		return err
	}
	fmt.Printf("Pet name set to %s\n", c.Name)
	return nil
}

type ProfileAvatarCmd struct {
	Avatar string `arg:"" help:"New avatar emoji."`
}

func (c *ProfileAvatarCmd) Run(ctx *Context) error {
	st, err := ctx.openStore()
	if err != nil {
		return err
	}
	if err := st.SetAvatar(c.Avatar); err != nil {
		return err
	}
	fmt.Printf("Avatar set to %s\n", c.Avatar)
	return nil
}

type ProfileThemeCmd struct {
	Theme string `arg:"" help:"Theme name (default|ocean|forest|sunset)."`
}

func (c *ProfileThemeCmd) Run(ctx *Context) error {
	st, err := ctx.openStore()
	if err != nil {
		return err
	}
	if err := st.SetTheme(c.Theme); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s\n", c.Theme)
	return nil
}
