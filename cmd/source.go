package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/testlens/internal/analysis"
	"github.com/abhisek/testlens/internal/fit"
	"github.com/abhisek/testlens/internal/review"
	"github.com/abhisek/testlens/internal/workbook"
)

// itemSet is one project's items under a single model.
type itemSet struct {
	project   string
	model     analysis.Model
	questions []analysis.QuestionAnalysis
	rasch     []analysis.RaschQuestion
}

func (s itemSet) len() int {
	if s.model == analysis.ModelRasch {
		return len(s.rasch)
	}
	return len(s.questions)
}

func (s itemSet) entries() []review.Entry {
	if s.model == analysis.ModelRasch {
		return review.BuildRaschList(analysis.RaschItems(s.rasch))
	}
	return review.BuildCTTList(analysis.CTTItems(s.questions))
}

func (s itemSet) distribution() analysis.Distribution {
	if s.model == analysis.ModelRasch {
		return analysis.Distribute(analysis.RaschItems(s.rasch), fit.EvaluateRasch)
	}
	return analysis.Distribute(analysis.CTTItems(s.questions), fit.EvaluateCTT)
}

// source returns the backend ID and stem of the item at a 1-based ordinal.
// The ID is empty when the input carried none.
func (s itemSet) source(ordinal int) (id, content string) {
	i := ordinal - 1
	if s.model == analysis.ModelRasch {
		if i >= 0 && i < len(s.rasch) {
			return s.rasch[i].ID, s.rasch[i].Content
		}
		return "", ""
	}
	if i >= 0 && i < len(s.questions) {
		return s.questions[i].ID, s.questions[i].Content
	}
	return "", ""
}

type sourceOpts struct {
	project string
	file    string
	model   string
}

func loadItems(ctx context.Context, opts sourceOpts) (itemSet, error) {
	var model analysis.Model
	if opts.model != "" {
		m, ok := analysis.ParseModel(opts.model)
		if !ok {
			return itemSet{}, fmt.Errorf("unknown model %q: want ctt or rasch", opts.model)
		}
		model = m
	}

	switch {
	case opts.file != "":
		set, err := loadFile(opts.file, model)
		if err != nil {
			return itemSet{}, err
		}
		set.project = opts.project
		if set.project == "" {
			set.project = strings.TrimSuffix(filepath.Base(opts.file), filepath.Ext(opts.file))
		}
		return set, nil
	case opts.project != "":
		if model == "" {
			model = analysis.ModelCTT
		}
		return fetchProject(ctx, opts.project, model)
	}
	return itemSet{}, errors.New("either --project or --file is required")
}

func fetchProject(ctx context.Context, project string, model analysis.Model) (itemSet, error) {
	client, err := newClient()
	if err != nil {
		return itemSet{}, err
	}
	set := itemSet{project: project, model: model}
	if model == analysis.ModelRasch {
		set.rasch, err = client.RaschAnalysis(ctx, project)
	} else {
		set.questions, err = client.Questions(ctx, project)
	}
	if err != nil {
		return itemSet{}, fmt.Errorf("fetch %s items for project %s: %w", model, project, err)
	}
	log.Info("fetched items", "project", project, "model", model, "items", set.len())
	return set, nil
}

// loadFile reads item statistics from an .xlsx or .json file. Without an
// explicit model, the workbook header or the JSON shape decides.
func loadFile(path string, model analysis.Model) (itemSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return itemSet{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		sheet, err := workbook.Open(f)
		if err != nil {
			return itemSet{}, err
		}
		if model == "" {
			model = sheet.Model()
		}
		set := itemSet{model: model}
		if model == analysis.ModelRasch {
			set.rasch, err = sheet.RaschQuestions()
		} else {
			set.questions, err = sheet.Questions()
		}
		return set, err

	case ".json":
		raw, err := os.ReadFile(path)
		if err != nil {
			return itemSet{}, err
		}
		if model == "" {
			model = analysis.ModelCTT
			if hasElements(raw) && analysis.ValidatePayload(analysis.KindRasch, raw) == nil {
				model = analysis.ModelRasch
			}
		}
		set := itemSet{model: model}
		if model == analysis.ModelRasch {
			set.rasch, err = analysis.Decode[[]analysis.RaschQuestion](analysis.KindRasch, raw)
		} else {
			set.questions, err = analysis.Decode[[]analysis.QuestionAnalysis](analysis.KindQuestions, raw)
		}
		return set, err
	}
	return itemSet{}, fmt.Errorf("unsupported file type %q: want .xlsx or .json", filepath.Ext(path))
}

// hasElements reports whether the payload, with or without its envelope, is a
// non-empty array. Any array validates as Rasch, so empty input stays CTT.
func hasElements(raw []byte) bool {
	var items []json.RawMessage
	if err := json.Unmarshal(analysis.Unwrap(raw), &items); err != nil {
		return false
	}
	return len(items) > 0
}
