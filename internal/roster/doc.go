// Package roster reads org charts described in YAML and assembles them
// into an [org.Org].
//
// A roster lists technical leads with their engineers and business leads
// with their accountants. Each accountant names the technical lead whose
// team it supports, and a technical lead may name the business lead it
// reports to:
//
//	version: "1"
//	technical_leads:
//	  - name: Satya Nadella
//	    manager: Amy Hood
//	    engineers:
//	      - name: Kasey
//	        code_access: true
//	business_leads:
//	  - name: Amy Hood
//	    accountants:
//	      - name: Niky
//	        supports: Satya Nadella
//
// Names identify employees within a roster and must be unique. Building a
// roster goes through the org API only, so headcount limits and budget
// rules apply exactly as they do to hand-built orgs.
package roster
