package cmd

import (
	"github.com/pkg/errors"

	"github.com/sarchlab/lanemap/authoring"
	"github.com/sarchlab/lanemap/datarecording"
	"github.com/sarchlab/lanemap/mapdata"
	"github.com/sarchlab/lanemap/mapfile"
)

// A session is a document opened by a command.
type session struct {
	path     string
	editor   *authoring.Editor
	recorder datarecording.DataRecorder
}

func (a *app) openSession(path string) (*session, error) {
	doc, err := mapfile.Load(path)
	if err != nil {
		return nil, err
	}

	s := &session{path: path}

	builder := authoring.MakeBuilder().
		WithMode(authoring.Headless).
		WithMaxAttempts(a.cfg.GetInt(keyMaxAttempts)).
		WithHook(mapdata.NewLogHook(a.logger.WithField("document", path)))

	if record := a.cfg.GetString(keyRecord); record != "" {
		s.recorder = datarecording.NewDataRecorder(record)
		builder = builder.WithHook(
			datarecording.NewAssignmentTracer(s.recorder, path))
	}

	s.editor = builder.Build(doc)

	return s, nil
}

// save writes the document to out, or back to where it was loaded from when
// out is empty.
func (s *session) save(out string) error {
	if out == "" {
		out = s.path
	}

	return errors.Wrapf(mapfile.Save(out, s.editor.Document()),
		"saving %s", out)
}

func (s *session) close() error {
	if s.recorder == nil {
		return nil
	}

	return s.recorder.Close()
}

// category converts a category name and makes sure that it is registered.
func (s *session) category(name string) (mapdata.Category, error) {
	cat := mapdata.Category(name)

	if _, ok := s.editor.Registry().Prefix(cat); !ok {
		return "", errors.Errorf("unknown category %q, known categories: %v",
			name, s.editor.Registry().Categories())
	}

	return cat, nil
}

// nodeName names the node that carries the entity.
func (s *session) nodeName(e mapdata.Entity) string {
	n := s.editor.Document().NodeOf(e)
	if n == nil {
		return "?"
	}

	return n.Name()
}
