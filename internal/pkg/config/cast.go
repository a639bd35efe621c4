package config

import (
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

func castInt(key string) (int, error) {
	return cast.ToIntE(viper.GetString(key))
}

func castBool(key string) (bool, error) {
	return cast.ToBoolE(viper.GetString(key))
}
