// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package argv provides read-only access to the process argument vector.

The vector is returned exactly as the process received it, including the
program path as the first element. Nothing is parsed, filtered or
reordered.

# Basic Usage

	args := argv.Arguments()
	fmt.Println(args[0]) // program path

# Testing

Production code accepts an argv.Provider. Tests substitute a fixed vector or
the generated mock:

	provider := argv.Static("prog", "--flag", "value")

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockProvider(ctrl)
	mock.EXPECT().Arguments().Return(argv.Vector{"prog"})
*/
package argv
