/*
 * Tablegraph
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"
)

const testconf = "testconfig"

func TestConfig(t *testing.T) {

	Config = nil

	ioutil.WriteFile(testconf, []byte(`{
    "EnableDebugLog": true,
    "EdgeFileSeparator": ","
}`), 0644)

	defer func() {
		if err := os.Remove(testconf); err != nil {
			fmt.Print("Could not remove test config file:", err.Error())
		}
	}()

	if err := LoadConfigFile(testconf); err != nil {
		t.Error(err)
		return
	}

	if res := Str(EnableDebugLog); res != "true" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Bool(EnableDebugLog); !res {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(EdgeFileSeparator); res != "," {
		t.Error("Unexpected result:", res)
		return
	}

	// Missing options are filled with defaults

	if res := Bool(TrimAfterMerge); !res {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(EdgeFileComment); res != "#" {
		t.Error("Unexpected result:", res)
		return
	}

	LoadDefaultConfig()

	if res := Str(EnableDebugLog); res != "false" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(EdgeFileSeparator); res != "\t" {
		t.Error("Unexpected result:", res)
		return
	}

	Config["BatchSize"] = "123"

	if res := Int("BatchSize"); res != 123 {
		t.Error("Unexpected result:", res)
		return
	}

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Parsing an invalid int should panic")
			}
		}()

		Int(EdgeFileComment)
	}()
}

func TestConfigFileCreation(t *testing.T) {
	const newconf = "testconfig_new"

	defer os.Remove(newconf)

	if err := LoadConfigFile(newconf); err != nil {
		t.Error(err)
		return
	}

	if _, err := os.Stat(newconf); err != nil {
		t.Error("Config file should have been created:", err)
		return
	}

	if res := Bool(ValidateInput); !res {
		t.Error("Unexpected result:", res)
	}
}
