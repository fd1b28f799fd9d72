package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"sealcheck/internal/slug"
)

// seedCategory describes one category to insert, with its keywords and the
// names of the seal types commonly used on products in it.
type seedCategory struct {
	name              string
	description       string
	requiresSeal      bool
	regulationCode    string
	regulationName    string
	regulationSummary string
	regulationURL     string
	sealTypes         []string
	sealDescription   string
	whatToDo          string
	parent            string // parent category name, empty for top-level
	keywords          []string
}

// Seed populates the database with the initial category, keyword, seal type,
// and article data set. It is idempotent: if any categories already exist
// the seed is skipped entirely, so the offline data-preparation process can
// safely own the data afterwards.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM product_categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	if err := seedSealTypes(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedArticles(db); err != nil {
		return err
	}

	slog.Info("database seeded with initial category and article data")
	return nil
}

func seedSealTypes(db *sql.DB) error {
	sealTypes := []struct {
		name, description, howToCheck string
		signs, products               []string
	}{
		{
			name:        "Foil Inner Seal",
			description: "A foil or paper membrane glued over the container opening, under the cap.",
			howToCheck:  "Remove the cap and check that the membrane is fully bonded to the rim with no lifted edges.",
			signs:       []string{"Torn or punctured membrane", "Membrane missing entirely", "Glue residue but no foil"},
			products:    []string{"Pain relievers", "Vitamins", "Peanut butter"},
		},
		{
			name:        "Shrink Band",
			description: "A tight plastic band shrunk around the cap and neck of a bottle.",
			howToCheck:  "Confirm the band is intact, tight, and tears only along its perforation.",
			signs:       []string{"Band cut or split", "Band missing", "Band loose enough to spin"},
			products:    []string{"Cough syrup", "Eye drops", "Condiments"},
		},
		{
			name:        "Breakaway Cap",
			description: "A cap with a ring that visibly separates the first time the container is opened.",
			howToCheck:  "Check that the ring below the cap is still attached and unbroken.",
			signs:       []string{"Ring already separated", "Cap turns without resistance"},
			products:    []string{"Beverages", "Mouthwash", "Liquid medicines"},
		},
		{
			name:        "Blister Pack",
			description: "Individual doses sealed between a formed plastic well and a foil backing.",
			howToCheck:  "Inspect every well: the foil backing should be unbroken over each dose.",
			signs:       []string{"Punctured or resealed foil", "Missing doses", "Cut edges on the card"},
			products:    []string{"Tablets", "Capsules", "Lozenges"},
		},
		{
			name:        "Vacuum Button",
			description: "A depressed safety button in a metal lid that pops up once the vacuum is broken.",
			howToCheck:  "Press the center of the lid: it should be rigid and must not click up and down.",
			signs:       []string{"Button already popped", "Lid flexes and clicks when pressed"},
			products:    []string{"Baby food jars", "Sauces", "Jams"},
		},
	}

	for _, st := range sealTypes {
		signs, err := json.Marshal(st.signs)
		if err != nil {
			return fmt.Errorf("seed marshal seal type %q: %w", st.name, err)
		}
		products, err := json.Marshal(st.products)
		if err != nil {
			return fmt.Errorf("seed marshal seal type %q: %w", st.name, err)
		}
		_, err = db.Exec(`
			INSERT INTO seal_types (name, slug, description, how_to_check, signs_of_tampering, common_products)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, st.name, slug.Generate(st.name), st.description, st.howToCheck, signs, products)
		if err != nil {
			return fmt.Errorf("seed insert seal type %q: %w", st.name, err)
		}
	}
	return nil
}

func seedCategories(db *sql.DB) error {
	categories := []seedCategory{
		{
			name:              "OTC Medicines",
			description:       "Over-the-counter drug products sold directly to consumers.",
			requiresSeal:      true,
			regulationCode:    "21 CFR 211.132",
			regulationURL:     "https://www.ecfr.gov/current/title-21/chapter-I/subchapter-C/part-211/subpart-G/section-211.132",
			regulationName:    "Tamper-evident packaging requirements for over-the-counter human drug products",
			regulationSummary: "All OTC drug products (with narrow exceptions such as dermatologics and lozenges) must use tamper-evident packaging with an identifying statement on the label.",
			sealTypes:         []string{"foil-inner-seal", "blister-pack", "shrink-band"},
			sealDescription:   "At least one tamper-evident feature, most commonly a foil inner seal or blister packaging, plus a label statement describing the feature.",
			whatToDo:          "Do not use the product. Return it to the store where you bought it and report it to the FDA's MedWatch program.",
			keywords:          []string{"medicine", "otc", "drug", "pharmacy"},
		},
		{
			name:              "OTC Pain Relievers",
			parent:            "OTC Medicines",
			description:       "Non-prescription analgesics such as acetaminophen, ibuprofen, and aspirin.",
			requiresSeal:      true,
			regulationCode:    "21 CFR 211.132",
			regulationURL:     "https://www.ecfr.gov/current/title-21/chapter-I/subchapter-C/part-211/subpart-G/section-211.132",
			regulationName:    "Tamper-evident packaging requirements for over-the-counter human drug products",
			regulationSummary: "The rule adopted after the 1982 Tylenol poisonings; it requires tamper-evident packaging on nearly all OTC drugs.",
			sealTypes:         []string{"foil-inner-seal", "blister-pack"},
			sealDescription:   "Foil inner seal under the cap; many brands add a shrink band and individually sealed blister cards.",
			whatToDo:          "Do not take any dose. Keep the package, return it to the retailer, and file a MedWatch report.",
			keywords:          []string{"tylenol", "advil", "ibuprofen", "acetaminophen", "aspirin", "aleve", "naproxen", "pain reliever", "painkiller"},
		},
		{
			name:              "Cough and Cold Medicine",
			parent:            "OTC Medicines",
			description:       "Liquid and solid cold, flu, and cough remedies.",
			requiresSeal:      true,
			regulationCode:    "21 CFR 211.132",
			regulationURL:     "https://www.ecfr.gov/current/title-21/chapter-I/subchapter-C/part-211/subpart-G/section-211.132",
			regulationName:    "Tamper-evident packaging requirements for over-the-counter human drug products",
			regulationSummary: "Liquid OTC drugs must carry tamper-evident packaging such as a breakaway cap or a printed shrink band.",
			sealTypes:         []string{"shrink-band", "breakaway-cap", "foil-inner-seal"},
			sealDescription:   "Shrink band around the cap or a breakaway cap ring; tablets come in sealed blister cards.",
			whatToDo:          "Do not use the product. Return it and report it to the FDA's MedWatch program.",
			keywords:          []string{"nyquil", "dayquil", "robitussin", "mucinex", "cough syrup", "cold medicine", "flu medicine"},
		},
		{
			name:              "Eye Drops",
			parent:            "OTC Medicines",
			description:       "Sterile ophthalmic solutions including artificial tears and redness relievers.",
			requiresSeal:      true,
			regulationCode:    "21 CFR 211.132",
			regulationURL:     "https://www.ecfr.gov/current/title-21/chapter-I/subchapter-C/part-211/subpart-G/section-211.132",
			regulationName:    "Tamper-evident packaging requirements for over-the-counter human drug products",
			regulationSummary: "Sterile ophthalmic products were among the first required to carry tamper-evident packaging.",
			sealTypes:         []string{"shrink-band", "breakaway-cap"},
			sealDescription:   "Shrink band over the cap and bottle neck, or a sealed carton that must be torn open.",
			whatToDo:          "Sterility cannot be verified once the seal is broken. Discard or return the product; never use it in your eyes.",
			keywords:          []string{"eye drops", "visine", "artificial tears", "contact solution", "saline"},
		},
		{
			name:              "Mouthwash",
			description:       "Liquid oral hygiene products.",
			requiresSeal:      true,
			regulationCode:    "21 CFR 700.25",
			regulationURL:     "https://www.ecfr.gov/current/title-21/chapter-I/subchapter-G/part-700/subpart-B/section-700.25",
			regulationName:    "Tamper-resistant packaging requirements for cosmetic products",
			regulationSummary: "Liquid oral hygiene products and all cosmetic vaginal products must be packaged in tamper-resistant packages.",
			sealTypes:         []string{"breakaway-cap", "shrink-band"},
			sealDescription:   "Breakaway cap ring or a printed shrink band around the closure.",
			whatToDo:          "Do not use the product and return it to the retailer.",
			keywords:          []string{"mouthwash", "listerine", "oral rinse", "mouth rinse"},
		},
		{
			name:              "Vitamins and Supplements",
			description:       "Dietary supplements, vitamins, and minerals.",
			requiresSeal:      false,
			regulationSummary: "No federal rule requires tamper-evident packaging on dietary supplements, but most manufacturers apply a foil inner seal voluntarily.",
			sealTypes:         []string{"foil-inner-seal", "shrink-band"},
			sealDescription:   "Usually a voluntary foil inner seal; absence of a seal is not by itself a violation.",
			whatToDo:          "If a seal you expect is missing or damaged, return the product and notify the manufacturer.",
			keywords:          []string{"vitamins", "supplements", "multivitamin", "fish oil", "protein powder", "melatonin"},
		},
		{
			name:              "Baby Food",
			description:       "Jarred and pouched food intended for infants.",
			requiresSeal:      false,
			regulationSummary: "Not covered by the OTC drug rule, but vacuum-sealed lids with pop-up safety buttons are the universal industry standard.",
			sealTypes:         []string{"vacuum-button", "shrink-band"},
			sealDescription:   "Vacuum button lid on jars; pouches use welded spout seals.",
			whatToDo:          "If the button is popped or the jar opens without a click, do not feed it to a child; return it and report it to the retailer.",
			keywords:          []string{"baby food", "gerber", "formula", "infant formula", "baby cereal"},
		},
	}

	ids := make(map[string]string, len(categories))
	for _, c := range categories {
		sealTypes, err := json.Marshal(c.sealTypes)
		if err != nil {
			return fmt.Errorf("seed marshal category %q: %w", c.name, err)
		}

		var parentID any
		if c.parent != "" {
			pid, ok := ids[c.parent]
			if !ok {
				return fmt.Errorf("seed category %q: parent %q not seeded yet", c.name, c.parent)
			}
			parentID = pid
		}

		var id string
		err = db.QueryRow(`
			INSERT INTO product_categories
				(name, slug, description, requires_seal,
				 regulation_code, regulation_name, regulation_summary, regulation_url,
				 seal_types, seal_description, what_to_do, parent_category_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id
		`, c.name, slug.Generate(c.name), c.description, c.requiresSeal,
			nullable(c.regulationCode), nullable(c.regulationName), nullable(c.regulationSummary),
			nullable(c.regulationURL),
			sealTypes, nullable(c.sealDescription), nullable(c.whatToDo), parentID,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert category %q: %w", c.name, err)
		}
		ids[c.name] = id

		for _, kw := range c.keywords {
			if _, err := db.Exec(`
				INSERT INTO product_keywords (category_id, keyword) VALUES ($1, $2)
			`, id, kw); err != nil {
				return fmt.Errorf("seed insert keyword %q: %w", kw, err)
			}
		}
	}
	return nil
}

func seedArticles(db *sql.DB) error {
	articles := []struct {
		title, metaDescription, content string
	}{
		{
			title:           "How to Check a Safety Seal Before You Buy",
			metaDescription: "A quick guide to inspecting tamper-evident packaging in the store aisle.",
			content: `Tamper-evident packaging is designed to *reveal* access, not prevent it.
A few seconds of inspection before you buy catches almost every problem:

1. **Look at the outer wrap.** Shrink bands should be tight and unbroken.
2. **Press vacuum lids.** A safety button that clicks has lost its vacuum.
3. **Check the label statement.** OTC drugs must describe their seal on the label, so you know what to expect.
4. **After opening, check the inner seal.** Foil membranes should be bonded all the way around.

If anything looks wrong, hand the product to store staff instead of putting it back on the shelf.`,
		},
		{
			title:           "Why Tamper-Evident Packaging Exists",
			metaDescription: "The 1982 Tylenol poisonings and the federal rules that followed.",
			content: `In 1982, seven people in the Chicago area died after taking cyanide-laced
Tylenol capsules. Within months the FDA issued 21 CFR 211.132, requiring
tamper-evident packaging on nearly all over-the-counter drugs, and Congress
made product tampering a federal crime.

The rule does not make packages impossible to open. It makes unauthorized
opening *visible*: a torn membrane, a split band, a popped button. That is
why a missing or damaged seal is always worth taking seriously, even when
the product inside looks untouched.`,
		},
	}

	for _, a := range articles {
		if _, err := db.Exec(`
			INSERT INTO articles (title, slug, content, meta_description, published)
			VALUES ($1, $2, $3, $4, true)
		`, a.title, slug.Generate(a.title), a.content, a.metaDescription); err != nil {
			return fmt.Errorf("seed insert article %q: %w", a.title, err)
		}
	}
	return nil
}

// nullable converts an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
