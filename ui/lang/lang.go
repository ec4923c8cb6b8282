package lang

import (
	"duelchess/src/base"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	yaml "gopkg.in/yaml.v3"
)

//go:embed en.yaml ru.yaml
var files embed.FS

type LangType int

const (
	EN LangType = iota
	RU
)

// ParseLang maps a config value to a LangType, anything unknown is EN
func ParseLang(s string) LangType {
	if strings.EqualFold(s, "ru") {
		return RU
	}
	return EN
}

func (l LangType) String() string {
	if l == RU {
		return "ru"
	}
	return "en"
}

// Catalog holds the flattened dot-keys of one language
type Catalog struct {
	lang LangType
	dict map[string]string
}

func NewCatalog(l LangType) (*Catalog, error) {
	c := &Catalog{}
	if err := c.SetLang(l); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) GetLang() LangType {
	return c.lang
}

func (c *Catalog) SetLang(l LangType) error {
	raw, err := files.ReadFile(l.String() + ".yaml")
	if err != nil {
		return fmt.Errorf("read messages %v: %w", l, err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("parse messages %v: %w", l, err)
	}
	dict := make(map[string]string)
	if err := flatten(m, "", dict); err != nil {
		return fmt.Errorf("messages %v: %w", l, err)
	}
	c.lang = l
	c.dict = dict
	return nil
}

func flatten(src any, prefix string, out map[string]string) error {
	switch v := src.(type) {
	case map[string]any:
		for k, vv := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if err := flatten(vv, key, out); err != nil {
				return err
			}
		}
		return nil
	case string:
		if prefix == "" {
			return errors.New("string value without key")
		}
		out[prefix] = v
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported value at %s: %T", prefix, v)
	}
}

// T returns the text for key, or the key itself if there is none
func (c *Catalog) T(key string) string {
	if v, ok := c.dict[key]; ok {
		return v
	}
	return key
}

// Render executes the template stored under key. Missing keys in data are
// errors.
func (c *Catalog) Render(key string, data any) (string, error) {
	tpl, ok := c.dict[key]
	if !ok {
		return "", fmt.Errorf("message not found: %s", key)
	}
	t, err := template.New(key).Option("missingkey=error").Parse(tpl)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// R is Render falling back to the key
func (c *Catalog) R(key string, data any) string {
	s, err := c.Render(key, data)
	if err != nil {
		return key
	}
	return s
}

// Key turns a value like "leaves king in check" into a key segment
func Key(prefix string, v fmt.Stringer) string {
	return prefix + "." + strings.ReplaceAll(strings.ToLower(v.String()), " ", "_")
}

// ReasonKey picks the message key for a rejected move. A self-check while
// the mover was already in check means the move did not resolve it.
func ReasonKey(out base.MoveOutcome) string {
	if out.Reason == base.LeavesKingInCheck && out.Status != base.Normal {
		return "reason.check_not_resolved"
	}
	return Key("reason", out.Reason)
}
