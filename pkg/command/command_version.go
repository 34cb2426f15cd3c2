// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/antgroup/spandiff/pkg/version"
)

type Version struct{}

func (c *Version) Run(g *Globals) error {
	fmt.Println(version.GetVersionString())
	return nil
}
