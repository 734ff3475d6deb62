package lemmatizer

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"strings"

	"text2phenotype.com/absa/utils"
)

//go:embed resources
var embedded embed.FS

// DefaultResources returns the bundled English rule files.
func DefaultResources() fs.FS {
	sub, err := fs.Sub(embedded, "resources")
	if err != nil {
		panic(err)
	}
	return sub
}

// ResourcesFromPath returns the rule folder at resPath, or the bundled rules when resPath is empty.
func ResourcesFromPath(resPath string) fs.FS {
	if resPath == "" {
		return DefaultResources()
	}
	return os.DirFS(resPath)
}

// LoadRules reads the morphological rule files from fsys.
func LoadRules(fsys fs.FS) (*MorphologicalRules, error) {
	var rules MorphologicalRules
	var err error
	if rules.AbbrRule, err = utils.ReadMap(fsys, "abbr_rule.bsv"); err != nil {
		return nil, err
	}
	if rules.AdjRule, err = ReadRuleList(fsys, "adj_rule.bsv"); err != nil {
		return nil, err
	}
	if rules.NounRule, err = ReadRuleList(fsys, "noun_rule.bsv"); err != nil {
		return nil, err
	}
	if rules.VerbRule, err = ReadRuleList(fsys, "verb_rule.bsv"); err != nil {
		return nil, err
	}
	if rules.NounExc, err = utils.ReadMap(fsys, "noun_exc.bsv"); err != nil {
		return nil, err
	}
	if rules.VerbExc, err = utils.ReadMap(fsys, "verb_exc.bsv"); err != nil {
		return nil, err
	}
	if rules.AdjExc, err = utils.ReadMap(fsys, "adj_exc.bsv"); err != nil {
		return nil, err
	}
	if rules.AdvExc, err = utils.ReadMap(fsys, "adv_exc.bsv"); err != nil {
		return nil, err
	}
	if rules.NounBase, err = utils.ReadSet(fsys, "noun_base.txt"); err != nil {
		return nil, err
	}
	if rules.VerbBase, err = utils.ReadSet(fsys, "verb_base.txt"); err != nil {
		return nil, err
	}
	if rules.AdjBase, err = utils.ReadSet(fsys, "adj_base.txt"); err != nil {
		return nil, err
	}
	if rules.AdvBase, err = utils.ReadSet(fsys, "adv_base.txt"); err != nil {
		return nil, err
	}
	if rules.OrdBase, err = utils.ReadSet(fsys, "ord_base.txt"); err != nil {
		return nil, err
	}
	if rules.CrdBase, err = utils.ReadSet(fsys, "crd_base.txt"); err != nil {
		return nil, err
	}
	return &rules, nil
}

func ReadRuleList(fsys fs.FS, name string) ([][]string, error) {
	lines, err := utils.ReadList(fsys, name)
	if err != nil {
		return nil, err
	}

	result := make([][]string, 0, len(lines))
	for _, line := range lines {
		p := strings.Split(line, "|")
		if len(p) != 2 {
			return nil, errors.New("rule should has 2 columns")
		}
		result = append(result, p)
	}

	return result, nil
}
