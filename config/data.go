package config

import (
	"github.com/spf13/viper"
)

// Data holds the persistence configuration.
type Data struct {
	// Database is the logical database name inside the store.
	Database string     `json:"database" yaml:"database"`
	MongoDB  *MongoNode `json:"mongodb" yaml:"mongodb"`
}

// MongoNode is a single MongoDB connection target.
type MongoNode struct {
	URI     string `json:"uri" yaml:"uri"`
	Logging bool   `json:"logging" yaml:"logging"`
}

// getDataConfig reads the persistence configuration.
func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		Database: getStringOrDefault(v, "data.database", "aigram"),
		MongoDB: &MongoNode{
			URI:     v.GetString("data.mongodb.uri"),
			Logging: v.GetBool("data.mongodb.logging"),
		},
	}
}
