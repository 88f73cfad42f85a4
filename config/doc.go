// SPDX-License-Identifier: EPL-2.0

// Package config reads audtool settings from the environment, optionally
// seeded from a .env file.
//
//	AUDTOOL_STORE=redis
//	AUDTOOL_REDIS_ADDR=127.0.0.1:6379
//	AUDTOOL_MIX_MODE=samples
//
// Variables already set in the environment win over the .env file.
package config
