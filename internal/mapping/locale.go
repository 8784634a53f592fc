package mapping

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/datapurity/purity-cli/internal/model"
)

// localeFile is the on-disk shape of a keyword extension file.
type localeFile struct {
	Rules []Rule `yaml:"rules"`
}

var knownFields = map[model.Field]bool{
	model.FieldName:    true,
	model.FieldEmail:   true,
	model.FieldPhone:   true,
	model.FieldCompany: true,
	model.FieldAddress: true,
	model.FieldNotes:   true,
}

// LoadLocale reads extra keyword rules from a YAML file and appends them to
// the table. New locales extend the table as data; control flow never
// changes.
func (t *Table) LoadLocale(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "mapping: read locale file")
	}
	return t.parseLocale(data)
}

func (t *Table) parseLocale(data []byte) (*Table, error) {
	var lf localeFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, eris.Wrap(err, "mapping: parse locale yaml")
	}

	for _, rule := range lf.Rules {
		if !knownFields[rule.Field] {
			return nil, eris.Errorf("mapping: unknown field %q in locale file", rule.Field)
		}
		if len(rule.Keywords) == 0 {
			return nil, eris.Errorf("mapping: field %q has no keywords", rule.Field)
		}
	}

	return t.Extend(lf.Rules), nil
}
