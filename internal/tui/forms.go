package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"petboard/internal/constants"
	"petboard/internal/models"
)

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("la data è obbligatoria")
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("formato data: YYYY-MM-DD")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("formato data: YYYY-MM-DD")
	}
	return nil
}

func validateOptionalTime(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(constants.TimeFormat, s); err != nil {
		return fmt.Errorf("formato ora: HH:MM")
	}
	return nil
}

// NewDiaryForm builds the add-entry form. An empty title is allowed; the
// store substitutes the placeholder.
func NewDiaryForm(fm *DiaryFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Titolo").
				Placeholder(constants.UntitledDiaryTitle).
				Value(&fm.Title),
			huh.NewText().
				Title("Racconto").
				Value(&fm.Text),
			huh.NewInput().
				Title("Data").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Emoji").
				Description("Un'emoji da allegare al ricordo").
				Value(&fm.Photo),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewHealthForm(fm *HealthFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.HealthType]().
				Title("Tipo").
				Options(
					huh.NewOption("Vaccinazione", models.HealthVaccination),
					huh.NewOption("Visita veterinaria", models.HealthVisit),
					huh.NewOption("Terapia", models.HealthTherapy),
					huh.NewOption("Controllo", models.HealthCheckup),
				).
				Value(&fm.Type),
			huh.NewInput().
				Title("Titolo").
				Description("Vuoto per usare il nome del tipo").
				Value(&fm.Title),
			huh.NewInput().
				Title("Data").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Ora").
				Value(&fm.Time).
				Validate(validateOptionalTime),
			huh.NewText().
				Title("Note").
				Value(&fm.Notes),
			huh.NewConfirm().
				Title("Promemoria il giorno prima").
				Value(&fm.Reminder),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewShoppingForm(fm *ShoppingFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Articolo").
				Value(&fm.Item).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("l'articolo non può essere vuoto")
					}
					return nil
				}),
			huh.NewSelect[models.ShoppingCategory]().
				Title("Colonna").
				Options(
					huh.NewOption("Cibo 🍖", models.CategoryFood),
					huh.NewOption("Snack 🦴", models.CategorySnack),
					huh.NewOption("Accessori 🎾", models.CategoryAccessory),
					huh.NewOption("Farmaci 💊", models.CategoryMedicine),
				).
				Value(&fm.Category),
			huh.NewInput().
				Title("Quantità").
				Value(&fm.Quantity),
			huh.NewInput().
				Title("Data").
				Description("Vuota se non c'è una scadenza").
				Value(&fm.Date).
				Validate(validateOptionalDate),
			huh.NewText().
				Title("Note").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewProfileForm(fm *ProfileFormModel) *huh.Form {
	themeOptions := make([]huh.Option[string], 0, len(ThemeNames()))
	for _, name := range ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nome").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("il nome non può essere vuoto")
					}
					return nil
				}),
			huh.NewInput().
				Title("Avatar").
				Description("Un'emoji che rappresenta il tuo animale").
				Value(&fm.Avatar).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("l'avatar non può essere vuoto")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Tema").
				Options(themeOptions...).
				Value(&fm.Theme),
		),
	).WithTheme(huh.ThemeDracula())
}
