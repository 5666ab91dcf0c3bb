package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// hdrtrans.cfg
func GetConfFromPath(filePath string) (*Config, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	conf := NewDefault()
	err = json.Unmarshal(bytes, conf)
	if err != nil {
		return nil, err
	}
	return conf, nil
}

// ReadHeaderFile reads one input header, from stdin when the file name
// is "-".
func ReadHeaderFile(headerFile string) ([]byte, error) {
	_, file := filepath.Split(headerFile)
	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(headerFile)
	}
	return data, err
}
