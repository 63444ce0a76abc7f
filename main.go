package main

import (
	"hash/fnv"
	"runtime"

	"github.com/tuannh982/weakmap/weakmap"

	log "github.com/sirupsen/logrus"
)

type exampleValue struct {
	name string
}

type exampleKey struct {
	name string
}

func (k exampleKey) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(k.name))
	return h.Sum64()
}

func (k exampleKey) Equals(other exampleKey) bool {
	return k.name == other.name
}

func presence(found bool) string {
	if found {
		return "has value"
	}
	return "value missing"
}

func weakValueExample(logger *log.Entry) {
	dictionary := weakmap.NewWeakValueMap[string, exampleValue]()
	value := &exampleValue{name: "example"}
	dictionary.Set("key", value)
	logger.Info(presence(dictionary.Get("key") != nil))
	runtime.KeepAlive(value)

	value = nil
	runtime.GC()
	logger.Info(presence(dictionary.Get("key") != nil))
	logger.WithField("count", dictionary.Count()).Info("before reap")
	dictionary.Reap()
	logger.WithField("count", dictionary.Count()).Info("after reap")
}

func weakKeyExample(logger *log.Entry) {
	dictionary := weakmap.NewWeakKeyMap[exampleKey, exampleValue](false)
	transientKey := &exampleKey{name: "value"}
	retainedValue := &exampleValue{name: "example"}
	dictionary.Set(transientKey, retainedValue)
	logger.Info(presence(dictionary.Get(transientKey) != nil))

	transientKey = &exampleKey{name: "anothervalue"}
	runtime.GC()
	logger.Info(presence(dictionary.Get(&exampleKey{name: "value"}) != nil))
	logger.WithField("count", dictionary.Count()).Info("stale entries are kept until reaped")
	logger.WithField("count", dictionary.Reaped().Count()).Info("reaped copy")
	runtime.KeepAlive(transientKey)
	runtime.KeepAlive(retainedValue)
}

func retainedByKeyExample(logger *log.Entry) {
	dictionary := weakmap.NewWeakKeyMap[exampleKey, exampleValue](true)
	key := &exampleKey{name: "owner"}
	dictionary.Set(key, &exampleValue{name: "owned"})
	runtime.GC()
	logger.Info(presence(dictionary.Get(&exampleKey{name: "owner"}) != nil))
	runtime.KeepAlive(key)

	key = nil
	runtime.GC()
	logger.Info(presence(dictionary.Get(&exampleKey{name: "owner"}) != nil))
	dictionary.Reap()
	logger.WithField("count", dictionary.Count()).Info("after reap")
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(log.DebugLevel)
	weakValueExample(log.WithFields(log.Fields{"example": "weak-value"}))
	weakKeyExample(log.WithFields(log.Fields{"example": "weak-key"}))
	retainedByKeyExample(log.WithFields(log.Fields{"example": "retained-by-key"}))
}
