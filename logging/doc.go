// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging builds the [log/slog.Logger] that host bindings write their
read records to.

Every argument read and environment lookup made through a host binding
produces a DEBUG record carrying the key and whether it was present, never
the value. With the default INFO level those records are hidden; set
HOSTENV_LOG_LEVEL=debug to see them:

	logger := logging.New(logging.WithEnv(&env.OSReader{}))

HOSTENV_LOG_FORMAT selects json (the default) or text. Explicit options
after [WithEnv] take precedence:

	logger := logging.New(
		logging.WithEnv(&env.OSReader{}),
		logging.WithOutput(&buf),
	)
*/
package logging
