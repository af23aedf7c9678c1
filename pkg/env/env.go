package env

import "os"

const (
	RedisPassWordKey = "REDIS_PASSWORD"
	MongoPassWordKey = "MONGO_PASSWORD"
)

var (
	RedisPassWord = os.Getenv(RedisPassWordKey)
	MongoPassWord = os.Getenv(MongoPassWordKey)
)

// Or returns value, or the fallback when value is empty.
func Or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
