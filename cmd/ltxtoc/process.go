package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/ltxtoc"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	html, err := deps.Store.ReadDocument(deps.Ctx, c.Input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	res := deps.Processor.Process(html)

	if c.Check {
		if err := c.check(deps, res); err != nil {
			return err
		}
	}

	if err := deps.Store.WriteDocument(deps.Ctx, c.Output, res.HTML); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if c.Outline != "" {
		md, err := ltxtoc.Outline(deps.Converter, res.Entries, c.Title)
		if err != nil {
			return fmt.Errorf("failed to render outline: %w", err)
		}
		if err := deps.Store.WriteDocument(deps.Ctx, c.Outline, md); err != nil {
			return fmt.Errorf("failed to write outline: %w", err)
		}
	}

	if len(res.Entries) == 0 {
		deps.Logger.Warn("no headings found, table of contents not inserted", "input", c.Input)
	}

	return nil
}

// check audits the processed document before it is written.
func (c *ProcessCmd) check(deps *Dependencies, res *ltxtoc.Result) error {
	report, err := deps.Auditor.Audit(res.HTML)
	if err != nil {
		return fmt.Errorf("failed to audit output: %w", err)
	}
	if report.OK() {
		return nil
	}

	var problems []string
	for _, id := range report.DuplicateIDs {
		problems = append(problems, fmt.Sprintf("duplicate id %q", id))
	}
	for _, text := range report.Unlabeled {
		problems = append(problems, fmt.Sprintf("heading without id: %q", text))
	}
	for _, href := range report.BrokenLinks {
		problems = append(problems, fmt.Sprintf("broken link %s", href))
	}
	for _, p := range problems {
		fmt.Fprintln(deps.Stderr, "check:", p)
	}
	return ltxtoc.Errorf(ltxtoc.EINVALID, "check failed: %s", strings.Join(problems, "; "))
}
