package assistant

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// IntentSpec is the prompt specification loaded from prompts/intent.yaml:
// system instructions, the intent taxonomy shown to the model, and style
// knobs for the completion call.
type IntentSpec struct {
	System              string        `yaml:"system"`
	Intents             []IntentEntry `yaml:"intents"`
	ComplaintCategories []string      `yaml:"complaint_categories"`
	Style               StyleSpec     `yaml:"style"`
}

type IntentEntry struct {
	Code string `yaml:"code" json:"code"`
	Desc string `yaml:"desc" json:"desc"`
}

type StyleSpec struct {
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

func LoadIntentSpec(path string) (IntentSpec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return IntentSpec{}, err
	}
	var spec IntentSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return IntentSpec{}, err
	}
	return spec, nil
}

// SchemaJSON renders the taxonomy block embedded in each prompt.
func (s IntentSpec) SchemaJSON() string {
	b, _ := json.Marshal(struct {
		Intents             []IntentEntry `json:"intents"`
		ComplaintCategories []string      `json:"complaint_categories"`
	}{s.Intents, s.ComplaintCategories})
	return string(b)
}
