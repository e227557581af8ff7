/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"
	yaml "gopkg.in/yaml.v3"
)

// CurrentVersion is written into saved definitions; loading accepts any file
// whose version is at or below it.
const CurrentVersion = 1

//go:embed menu.schema.json
var schemaBytes []byte

// LoadFile reads a menu definition. The extension selects the codec: .yaml
// and .yml parse as YAML, everything else as JSON. JSON documents are checked
// against the definition schema before decoding.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}

	var def Definition
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse definition %s: %w", path, err)
		}
	} else {
		if err := validateJSON(data); err != nil {
			return nil, fmt.Errorf("definition %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse definition %s: %w", path, err)
		}
	}
	if def.Version > CurrentVersion {
		return nil, fmt.Errorf("definition %s: version %d is newer than supported %d", path, def.Version, CurrentVersion)
	}
	return &def, nil
}

// SaveFile writes a definition, codec chosen by extension like LoadFile. The
// write is transactional: a temp file in the target directory, then a rename.
func SaveFile(path string, def *Definition) error {
	out := *def
	if out.Version == 0 {
		out.Version = CurrentVersion
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(&out)
	} else {
		data, err = json.MarshalIndent(&out, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("marshal definition: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".menu-*")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write definition: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close definition: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace definition: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func validateJSON(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("schema violation: %s", strings.Join(msgs, "; "))
	}
	return nil
}
