// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package configuration

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynpart/superimg/tools/internal/logger"
)

func TestMain(m *testing.M) {
	logger.InitStderrLog()
	os.Exit(m.Run())
}

func TestShouldSucceedParsingValidConfig(t *testing.T) {
	config, err := Load("testdata/partition_config.json")
	require.NoError(t, err)

	assert.Equal(t, "/images/super.img", config.SuperMeta.Path)
	assert.Equal(t, "4294967296", config.SuperMeta.Size)
	assert.Equal(t, "factory", config.NvText)
	assert.Equal(t, "nv-001", config.NvID)

	require.Len(t, config.BlockDevices, 2)
	assert.Equal(t, BlockDevice{BlockSize: "4096", Name: "super", Alignment: "1048576", Size: "4294967296"}, config.BlockDevices[0])
	assert.Equal(t, BlockDevice{BlockSize: "512", Name: "userdata", Alignment: "4096", Size: "1073741824"}, config.BlockDevices[1])

	require.Len(t, config.Groups, 2)
	assert.Equal(t, Group{Name: "main_a", MaximumSize: "2147483648"}, config.Groups[0])
	assert.Equal(t, Group{Name: "main_b"}, config.Groups[1])

	require.Len(t, config.Partitions, 3)
	assert.Equal(t, Partition{IsDynamic: true, Name: "system_a", GroupName: "main_a", Path: "system.img", Size: "536870912"}, config.Partitions[0])
	assert.Equal(t, Partition{IsDynamic: true, Name: "vendor_a", GroupName: "main_a"}, config.Partitions[1])
	assert.Equal(t, Partition{IsDynamic: false, Name: "boot", GroupName: "main_b", Path: "boot.img"}, config.Partitions[2])
}

func TestShouldPreserveDeclarationOrder(t *testing.T) {
	config, err := Load("testdata/partition_config.json")
	require.NoError(t, err)

	deviceNames := []string{}
	for _, device := range config.BlockDevices {
		deviceNames = append(deviceNames, device.Name)
	}
	assert.Equal(t, []string{"super", "userdata"}, deviceNames)

	partitionNames := []string{}
	for _, partition := range config.Partitions {
		partitionNames = append(partitionNames, partition.Name)
	}
	assert.Equal(t, []string{"system_a", "vendor_a", "boot"}, partitionNames)
}

func TestShouldDefaultMissingOptionalFields(t *testing.T) {
	config, err := Load("testdata/minimal_config.json")
	require.NoError(t, err)

	require.Len(t, config.Groups, 1)
	assert.Equal(t, "", config.Groups[0].MaximumSize)

	require.Len(t, config.Partitions, 1)
	assert.True(t, config.Partitions[0].IsDynamic)
	assert.Equal(t, "", config.Partitions[0].Path)
	assert.Equal(t, "", config.Partitions[0].Size)
}

func TestShouldReturnEqualConfigsOnRepeatedLoads(t *testing.T) {
	first, err := Load("testdata/partition_config.json")
	require.NoError(t, err)

	second, err := Load("testdata/partition_config.json")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestShouldFailWithIOErrorForMissingFile(t *testing.T) {
	_, err := Load("testdata/no_such_file.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, IOErrorKind, loadErr.Kind)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShouldFailWithParseErrorForMalformedJSON(t *testing.T) {
	_, err := Load("testdata/truncated_config.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ParseErrorKind, loadErr.Kind)
}

func TestShouldFailWithParseErrorForMissingRequiredField(t *testing.T) {
	_, err := Load("testdata/missing_is_dynamic.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ParseErrorKind, loadErr.Kind)
	assert.Contains(t, err.Error(), "is_dynamic")
}

func TestShouldFailWithParseErrorForWrongFieldType(t *testing.T) {
	_, err := Load("testdata/numeric_size_config.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ParseErrorKind, loadErr.Kind)
}

func TestShouldNotReturnPartialConfigOnFailure(t *testing.T) {
	config, err := Load("testdata/missing_is_dynamic.json")
	require.Error(t, err)
	assert.Equal(t, PartitionConfig{}, config)
}

func TestShouldFailParsingConfigMissingTopLevelField(t *testing.T) {
	var config PartitionConfig
	err := json.Unmarshal([]byte(`{"nv_text": "v1"}`), &config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "super_meta")
}
