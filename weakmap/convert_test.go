package weakmap

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
)

func exampleDictionary() map[*exampleKey]*sock {
	return map[*exampleKey]*sock{
		newKey("Left"):  newSock("left"),
		newKey("Right"): newSock("right"),
	}
}

func TestConversionFromWeakKeyMapToStrongMap(t *testing.T) {
	dictionary := exampleDictionary()
	converted := NewWeakKeyMapFrom(dictionary, false).ToStrongMap()
	require.ElementsMatch(t, maps.Keys(dictionary), maps.Keys(converted))
}

func TestConversionFromWeakKeyMapToWeakKeyMap(t *testing.T) {
	dictionary := exampleDictionary()
	converted := NewWeakKeyMapFrom(dictionary, false).Reaped().ToStrongMap()
	require.ElementsMatch(t, maps.Keys(dictionary), maps.Keys(converted))
}

func TestConversionFromWeakKeyMapToWeakValueMap(t *testing.T) {
	dictionary := exampleDictionary()
	valueMap := WeakValueMapFromKeyMap(NewWeakKeyMapFrom(dictionary, false))
	require.Equal(t, 2, valueMap.Count())
	converted := valueMap.ToStrongMap()
	require.ElementsMatch(t, maps.Keys(dictionary), maps.Keys(converted))
}

func TestConversionFromWeakValueMapToWeakKeyMap(t *testing.T) {
	dictionary := exampleDictionary()
	valueMap := WeakValueMapFromKeyMap(NewWeakKeyMapFrom(dictionary, false))
	keyMap := WeakKeyMapFromValueMap(valueMap, true)
	require.Equal(t, true, keyMap.RetainsValuesByKey())
	converted := keyMap.ToStrongMap()
	require.ElementsMatch(t, keyNames(dictionary), keyNames(converted))
	for k, v := range dictionary {
		require.Same(t, v, keyMap.Get(newKey(k.name)))
	}
}

func TestConversionSkipsStaleEntries(t *testing.T) {
	valueMap := NewWeakValueMap[*exampleKey, sock]()
	live := newKey("live")
	value := newSock("live")
	valueMap.Set(live, value)
	valueMap.Set(newKey("stale"), newSock("stale"))
	collect()
	require.Equal(t, 2, valueMap.Count())

	keyMap := WeakKeyMapFromValueMap(valueMap, false)
	require.Equal(t, 1, keyMap.Count())
	require.Same(t, value, keyMap.Get(newKey("live")))
	require.Equal(t, 1, WeakValueMapFromKeyMap(keyMap).Count())
	runtime.KeepAlive(live)
}
