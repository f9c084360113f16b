package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/dasdy/spookydraw/db"
	"github.com/dasdy/spookydraw/logging"
	"github.com/dasdy/spookydraw/model"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
)

// AnonymousAuthorID owns drawings imported without an author when
// anonymous drawings are allowed.
const AnonymousAuthorID = "anonymous"

// Bundle is the json document accepted by the import command.
type Bundle struct {
	Users    []model.User    `json:"users"`
	Drawings []model.Drawing `json:"drawings"`
}

type ImportResult struct {
	Users    int
	Drawings int
	Skipped  int
}

func LoadBundle(r io.Reader) (*Bundle, error) {
	var bundle Bundle

	if err := json.NewDecoder(r).Decode(&bundle); err != nil {
		return nil, fmt.Errorf("could not decode bundle: %w", err)
	}

	return &bundle, nil
}

// Import stores every valid user and drawing of the bundle. Invalid records
// and drawings above the per-user limit are skipped and counted. Storage
// failures abort the import.
func Import(storage db.Storage, bundle *Bundle, v *Validator, settings *model.AppSettings, progress io.Writer) (ImportResult, error) {
	var result ImportResult

	ctx := logging.PackageCtx("gallery")

	bar := progressbar.NewOptions(len(bundle.Users)+len(bundle.Drawings),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("Importing..."),
		progressbar.OptionShowCount(),
	)

	defer func() {
		if err := bar.Finish(); err != nil {
			slog.ErrorContext(ctx, "could not finish progress bar", "error", err)
		}
	}()

	names := make(map[string]string, len(bundle.Users))

	for i := range bundle.Users {
		advance(ctx, bar)

		user := bundle.Users[i]
		if err := v.ValidateUser(&user); err != nil {
			slog.WarnContext(ctx, "Skipping user", "id", user.ID, "error", err)

			result.Skipped++

			continue
		}

		if user.AvatarColor == "" {
			user.AvatarColor = ColorForUser(user.Username)
		}

		if err := storage.SaveUser(&user); err != nil {
			return result, err
		}

		names[user.ID] = user.Username
		result.Users++
	}

	perAuthor := make(map[string]int)

	for i := range bundle.Drawings {
		advance(ctx, bar)

		drawing := bundle.Drawings[i]
		if drawing.ID == "" {
			drawing.ID = uuid.NewString()
		}

		if drawing.AuthorID == "" && settings != nil && settings.AllowAnonymous {
			drawing.AuthorID = AnonymousAuthorID
			drawing.AuthorName = "Anonymous"
		}

		if drawing.AuthorName == "" {
			drawing.AuthorName = names[drawing.AuthorID]
		}

		if err := v.ValidateDrawing(&drawing); err != nil {
			slog.WarnContext(ctx, "Skipping drawing", "id", drawing.ID, "error", err)

			result.Skipped++

			continue
		}

		allowed, err := withinLimit(storage, settings, perAuthor, drawing.AuthorID)
		if err != nil {
			return result, err
		}

		if !allowed {
			slog.WarnContext(ctx, "Skipping drawing above per-user limit", "id", drawing.ID, "author", drawing.AuthorID)

			result.Skipped++

			continue
		}

		if err := storage.SaveDrawing(&drawing); err != nil {
			return result, err
		}

		perAuthor[drawing.AuthorID]++
		result.Drawings++
	}

	slog.InfoContext(ctx, "Import finished", "users", result.Users, "drawings", result.Drawings, "skipped", result.Skipped)

	return result, nil
}

func withinLimit(storage db.Storage, settings *model.AppSettings, perAuthor map[string]int, authorID string) (bool, error) {
	if settings == nil || settings.MaxDrawingsPerUser <= 0 {
		return true, nil
	}

	if _, seen := perAuthor[authorID]; !seen {
		existing, err := storage.CountDrawingsByAuthor(authorID)
		if err != nil {
			return false, err
		}

		perAuthor[authorID] = existing
	}

	return perAuthor[authorID] < settings.MaxDrawingsPerUser, nil
}

func advance(ctx context.Context, bar *progressbar.ProgressBar) {
	if err := bar.Add(1); err != nil {
		slog.ErrorContext(ctx, "could not update progress bar", "error", err)
	}
}
