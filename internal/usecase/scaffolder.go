package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"learnlog/internal/domain/model"
	"learnlog/internal/domain/ports"
	"learnlog/internal/domain/slug"
)

var (
	// ErrTopicRequired is returned when a problem is added without a topic name.
	ErrTopicRequired = errors.New("topic name required")
	// ErrAborted is returned when the operator declines to create a missing topic.
	ErrAborted = errors.New("aborted: create the topic first or choose another topic")
	// ErrProblemExists is returned instead of overwriting a problem folder.
	ErrProblemExists = errors.New("problem folder already exists, aborting to avoid overwrite")
)

const (
	PlaceholderTopicDescription = "Description coming soon."
	DefaultProblemTitle         = "untitled problem"
	DefaultProblemDescription   = "No description provided."

	readmeFile     = "README.md"
	problemPrefix  = "problem_"
	problemPattern = problemPrefix + "[0-9][0-9]_*"
	dateLayout     = "2006-01-02"
)

// ScaffolderConfig controls file names and templates.
type ScaffolderConfig struct {
	SubjectTitle string
	IndexFile    string
	SolutionFile string
	Templates    TemplateSources
	// Now defaults to time.Now.
	Now func() time.Time
}

// Scaffolder creates topics and problems under the workspace root and keeps
// the README tables in sync.
type Scaffolder struct {
	workspace ports.Workspace
	prompt    ports.Prompter
	tables    ports.TableEditor
	cleaner   ports.TextCleaner
	reviews   ports.ReviewPlanner
	logger    ports.Logger
	templates *templates
	cfg       ScaffolderConfig
}

// NewScaffolder constructs a Scaffolder. It fails only on invalid templates.
func NewScaffolder(
	workspace ports.Workspace,
	prompt ports.Prompter,
	tables ports.TableEditor,
	cleaner ports.TextCleaner,
	reviews ports.ReviewPlanner,
	logger ports.Logger,
	cfg ScaffolderConfig,
) (*Scaffolder, error) {
	tmpl, err := parseTemplates(cfg.Templates)
	if err != nil {
		return nil, err
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Scaffolder{
		workspace: workspace,
		prompt:    prompt,
		tables:    tables,
		cleaner:   cleaner,
		reviews:   reviews,
		logger:    logger,
		templates: tmpl,
		cfg:       cfg,
	}, nil
}

// RootPath is the subject root on disk.
func (s *Scaffolder) RootPath() string {
	return s.workspace.Path("")
}

// IndexPath is the index document on disk.
func (s *Scaffolder) IndexPath() string {
	return s.workspace.Path(s.cfg.IndexFile)
}

// EnsureBase creates the subject root and, if absent, the index document.
func (s *Scaffolder) EnsureBase(ctx context.Context) error {
	if err := s.workspace.EnsureDir(""); err != nil {
		return err
	}

	exists, err := s.workspace.Exists(s.cfg.IndexFile)
	if err != nil || exists {
		return err
	}

	content, err := render(s.templates.index, indexData{SubjectTitle: s.cfg.SubjectTitle})
	if err != nil {
		return err
	}
	if err := s.workspace.WriteFile(s.cfg.IndexFile, content); err != nil {
		return err
	}

	s.prompt.Say(ctx, "Created main README: %s", s.IndexPath())
	s.logger.Info(ctx, "index created", "path", s.IndexPath())
	return nil
}

// NextProblemNumber returns one more than the highest problem_NN_ number in
// the topic directory, or 1 if there is none. Unparsable names are skipped.
func (s *Scaffolder) NextProblemNumber(topicSlug string) (int, error) {
	names, err := s.workspace.Glob(topicSlug, problemPattern)
	if err != nil {
		return 0, err
	}

	highest := 0
	for _, name := range names {
		n, err := strconv.Atoi(name[len(problemPrefix) : len(problemPrefix)+2])
		if err != nil {
			continue
		}
		highest = max(highest, n)
	}
	return highest + 1, nil
}

// AddTopic creates the topic folder and README unless they exist, then makes
// sure the index lists the topic. A blank name is asked for once more and
// falls back to "untitled".
func (s *Scaffolder) AddTopic(ctx context.Context, name, description string) (model.Topic, error) {
	if strings.TrimSpace(name) == "" {
		answer, err := s.prompt.Ask(ctx, "Topic empty — enter a short topic name (or press Enter to use 'untitled'): ")
		if err != nil {
			return model.Topic{}, err
		}
		name = answer
	}

	topic := s.newTopic(name, description)
	if err := s.createTopic(ctx, topic); err != nil {
		return model.Topic{}, err
	}
	return topic, nil
}

// ResolveTopic finds the topic for name, offering to create it with a
// placeholder description when its folder is missing.
func (s *Scaffolder) ResolveTopic(ctx context.Context, name string) (model.Topic, error) {
	if strings.TrimSpace(name) == "" {
		return model.Topic{}, ErrTopicRequired
	}

	topic := s.newTopic(name, "")
	exists, err := s.workspace.Exists(topic.Slug)
	if err != nil {
		return model.Topic{}, err
	}
	if exists {
		return topic, nil
	}

	answer, err := s.prompt.Ask(ctx, fmt.Sprintf("Topic '%s' does not exist. Create it? (y/n): ", topic.Title))
	if err != nil {
		return model.Topic{}, err
	}
	if !strings.EqualFold(answer, "y") {
		return model.Topic{}, fmt.Errorf("topic %q: %w", topic.Title, ErrAborted)
	}

	if err := s.createTopic(ctx, topic); err != nil {
		return model.Topic{}, err
	}
	return topic, nil
}

// AddProblem numbers a new problem under topicName and creates it. Empty
// title and description get placeholders.
func (s *Scaffolder) AddProblem(ctx context.Context, topicName, title, description string) (model.Problem, error) {
	topic, err := s.ResolveTopic(ctx, topicName)
	if err != nil {
		return model.Problem{}, err
	}

	number, err := s.NextProblemNumber(topic.Slug)
	if err != nil {
		return model.Problem{}, err
	}

	title = s.cleaner.Clean(title)
	if title == "" {
		title = DefaultProblemTitle
	}
	description = s.cleaner.Clean(description)
	if description == "" {
		description = DefaultProblemDescription
	}

	problem := model.Problem{
		Number:      number,
		Title:       title,
		Slug:        slug.Slugify(title),
		Description: description,
		Topic:       topic.Slug,
	}
	if err := s.CreateProblem(ctx, topic, problem); err != nil {
		return model.Problem{}, err
	}
	return problem, nil
}

// CreateProblem writes the problem folder, README and solution placeholder,
// then adds a row to the topic README and the index. An existing folder is
// left untouched and ErrProblemExists is returned.
func (s *Scaffolder) CreateProblem(ctx context.Context, topic model.Topic, problem model.Problem) error {
	dir := path.Join(topic.Slug, problem.FolderName())
	exists, err := s.workspace.Exists(dir)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s: %w", s.workspace.Path(dir), ErrProblemExists)
	}

	data := s.problemData(problem)
	readme, err := render(s.templates.problem, data)
	if err != nil {
		return err
	}
	solution, err := render(s.templates.solution, data)
	if err != nil {
		return err
	}

	if err := s.workspace.EnsureDir(dir); err != nil {
		return err
	}
	if err := s.workspace.WriteFile(path.Join(dir, readmeFile), readme); err != nil {
		return err
	}
	if err := s.workspace.WriteFile(path.Join(dir, s.cfg.SolutionFile), solution); err != nil {
		return err
	}
	s.prompt.Say(ctx, "Created problem folder: %s", s.workspace.Path(dir))

	if err := s.addTopicRow(topic, problem); err != nil {
		return err
	}
	if err := s.addIndexRow(topic, problem); err != nil {
		return err
	}

	s.prompt.Say(ctx, "Updated topic README and main README with the new problem entry.")
	s.logger.Info(ctx, "problem created", "topic", topic.Slug, "folder", problem.FolderName())
	return nil
}

func (s *Scaffolder) newTopic(name, description string) model.Topic {
	topicSlug := slug.Slugify(name)
	description = s.cleaner.Clean(description)
	if description == "" {
		description = PlaceholderTopicDescription
	}
	return model.Topic{
		Slug:        topicSlug,
		Title:       slug.TitleCase(topicSlug),
		Description: description,
	}
}

func (s *Scaffolder) createTopic(ctx context.Context, topic model.Topic) error {
	exists, err := s.workspace.Exists(topic.Slug)
	if err != nil {
		return err
	}

	if exists {
		s.prompt.Say(ctx, "Topic '%s' already exists at %s", topic.Title, s.workspace.Path(topic.Slug))
	} else {
		if err := s.writeTopicReadme(topic); err != nil {
			return err
		}
		s.prompt.Say(ctx, "Created topic folder and README: %s", s.workspace.Path(topic.Slug))
		s.logger.Info(ctx, "topic created", "topic", topic.Slug)
	}

	doc, err := s.workspace.ReadFile(s.cfg.IndexFile)
	if err != nil {
		return err
	}
	updated, changed := s.tables.EnsureSection(doc, topic.Title, topic.Description)
	if !changed {
		s.prompt.Say(ctx, "Main README already has this topic listed.")
		return nil
	}
	if err := s.workspace.WriteFile(s.cfg.IndexFile, updated); err != nil {
		return err
	}
	s.prompt.Say(ctx, "Added topic '%s' to main README.", topic.Title)
	return nil
}

func (s *Scaffolder) writeTopicReadme(topic model.Topic) error {
	content, err := render(s.templates.topic, topicData{Title: topic.Title, Description: topic.Description})
	if err != nil {
		return err
	}
	if err := s.workspace.EnsureDir(topic.Slug); err != nil {
		return err
	}
	return s.workspace.WriteFile(path.Join(topic.Slug, readmeFile), content)
}

func (s *Scaffolder) addTopicRow(topic model.Topic, problem model.Problem) error {
	readme := path.Join(topic.Slug, readmeFile)
	exists, err := s.workspace.Exists(readme)
	if err != nil {
		return err
	}
	if !exists {
		placeholder := topic
		placeholder.Description = PlaceholderTopicDescription
		if err := s.writeTopicReadme(placeholder); err != nil {
			return err
		}
	}

	doc, err := s.workspace.ReadFile(readme)
	if err != nil {
		return err
	}
	doc = s.tables.AppendTableRow(doc, rowFor(problem, problem.ReadmeLink()))
	return s.workspace.WriteFile(readme, doc)
}

func (s *Scaffolder) addIndexRow(topic model.Topic, problem model.Problem) error {
	doc, err := s.workspace.ReadFile(s.cfg.IndexFile)
	if err != nil {
		return err
	}
	doc = s.tables.AppendRow(doc, topic.Title, rowFor(problem, problem.IndexLink()))
	return s.workspace.WriteFile(s.cfg.IndexFile, doc)
}

func (s *Scaffolder) problemData(problem model.Problem) problemData {
	now := s.cfg.Now()
	data := problemData{
		Number:       problem.Number,
		Padded:       fmt.Sprintf("%02d", problem.Number),
		Title:        problem.Title,
		Description:  problem.Description,
		Topic:        problem.Topic,
		Created:      now.Format(dateLayout),
		SolutionFile: s.cfg.SolutionFile,
	}
	if next := s.reviews.NextReview(now); !next.IsZero() {
		data.NextReview = next.Format(dateLayout)
	}
	return data
}

func rowFor(problem model.Problem, link string) model.Row {
	return model.Row{
		Number:      problem.Number,
		Title:       problem.Title,
		Link:        link,
		Description: problem.Description,
	}
}

// Index returns the current index document, or "" if it does not exist yet.
func (s *Scaffolder) Index() (string, error) {
	return s.workspace.ReadFile(s.cfg.IndexFile)
}
