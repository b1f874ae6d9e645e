package advisory

import "github.com/sells-group/succession-cli/internal/model"

// block is the fixed content for one scenario.
type block struct {
	perspectives model.Perspectives
	// attachment entries are appended to the emotional perspective when the
	// owner's emotional attachment is high or very high. Empty for scenarios
	// without attachment guidance.
	attachment    []string
	risks         []string
	opportunities []string
}

var scenarioContent = map[model.Scenario]block{
	model.ScenarioFamilyInternal: {
		perspectives: model.Perspectives{
			Emotional: []string{
				"👨‍👩‍👧 **Familieninterne Übergabe** - Sie planen eine Übergabe innerhalb der Familie.",
				"💭 **Loslassen lernen**: \"Die Grenzen zwischen Unternehmen und Privatbereich verschieben sich\" - bereiten Sie sich mental auf diese Veränderung vor.",
				"🎯 **Motivation prüfen**: \"Es geht uns ums Wollen. Wer nicht überzeugt ist, den sollte man nicht in die Chefsessel der Eltern setzen.\"",
				"⚖️ **Geschwisterausgleich**: Denken Sie an faire Lösungen für nicht-nachfolgende Geschwister (Pflichtteilsansprüche, Ausgleichszahlungen).",
			},
			Legal: []string{
				"📜 **Gesellschaftsvertrag prüfen**: Enthält er Nachfolgeregelungen und Ausgleichsmechanismen?",
				"⚖️ **Testament aufsetzen**: \"Gesellschaftsvertrag und Testament sollten immer aufeinander abgestimmt sein\"",
				"🆘 **Notfallplan erstellen**: \"Notfallplan ist kein Nice-to-have, sondern existenziell\" - Was passiert bei plötzlicher Arbeitsunfähigkeit?",
				"👨‍⚖️ **Pflichtteilsansprüche beachten**: Geschwister haben gesetzliche Ansprüche, auch wenn sie nicht ins Unternehmen eintreten.",
			},
			Tax: []string{
				"💰 **Freibeträge nutzen**: 400.000 € Freibetrag pro Kind alle 10 Jahre - \"Frühzeitige Planung kann Hunderttausende Euro sparen\"",
				"🎁 **Schenkung vs. Vererbung**: Schrittweise Übertragung zu Lebzeiten reduziert die Steuerlast erheblich.",
				"🏭 **Verschonungsregelungen**: Betriebsvermögen kann bis zu 100% steuerfrei übertragen werden (bei Lohnsummen- und Behaltensregeln).",
				"📊 **Bewertung optimieren**: Nutzen Sie vereinfachtes Ertragswertverfahren für günstigere Bemessungsgrundlage.",
			},
			Organizational: []string{
				"👔 **Schrittweise Einarbeitung**: Planen Sie 2-3 Jahre Übergangszeit mit klarer Rollenverteilung.",
				"📚 **Wissenstransfer**: Dokumentieren Sie Ihr Expertenwissen, Kundenkontakte und Prozesse systematisch.",
				"🎓 **Qualifizierung**: Falls nötig, unterstützen Sie die Weiterbildung des Nachfolgers (z.B. Betriebswirt, Branchenzertifikate).",
				"🔍 **Unternehmen fit machen**: Bereinigen Sie die Bilanz, modernisieren Sie Prozesse, klären Sie rechtliche Altlasten.",
			},
		},
		attachment: []string{
			"❤️ **Hohe emotionale Bindung**: Ihre starke Verbindung zum Unternehmen ist verständlich. Planen Sie eine schrittweise Ablösung ein.",
			"🔄 **Neue Lebensphase**: Entwickeln Sie Visionen für Ihre Zeit nach der Übergabe. Was möchten Sie noch erreichen?",
		},
		risks: []string{
			"⚠️ 36% der Familiennachfolgen scheitern an unzureichend vorbereiteten Nachfolgern",
			"⚠️ Konflikte mit nicht-nachfolgenden Geschwistern",
			"⚠️ Emotionale Verstrickungen können sachliche Entscheidungen erschweren",
			"⚠️ Gefahr der \"zu langsamen\" Übergabe - klare Deadlines setzen",
		},
		opportunities: []string{
			"✅ Vertrauen und Loyalität sind bereits vorhanden",
			"✅ Langfristige Kontinuität für Kunden und Mitarbeiter",
			"✅ Steueroptimierung durch Freibeträge und Verschonungsregeln",
			"✅ Legacy - Ihr Lebenswerk bleibt in der Familie",
		},
	},

	model.ScenarioManagementBuyout: {
		perspectives: model.Perspectives{
			Emotional: []string{
				"🤝 **Management-Buy-Out** - Sie planen die Übergabe an Ihre Mitarbeiter.",
				"💼 **Vertrauen als Basis**: \"Aus den eigenen Reihen: Vertrauen als Basis\" - Ihre Mitarbeiter kennen das Unternehmen.",
				"🎯 **Loyalität nutzen**: Die emotionale Bindung Ihrer Mitarbeiter ist ein großer Vorteil.",
				"⚡ **Loslassen**: Bereiten Sie sich darauf vor, dass neue Führung andere Wege gehen wird.",
			},
			Legal: []string{
				"📝 **Kaufvertrag präzise gestalten**: Asset Deal oder Share Deal? Haftungsausschlüsse klar regeln.",
				"⚖️ **Garantien und Gewährleistungen**: Was garantieren Sie für Bilanzen, Verträge, Verbindlichkeiten?",
				"🔒 **Verkäuferdarlehen absichern**: Falls Sie finanzieren, benötigen Sie Sicherheiten (z.B. Grundschuld, Bürgschaften).",
				"🆘 **Notfallplan**: Auch bei MBO wichtig - was passiert, wenn Käufer zahlungsunfähig wird?",
			},
			Tax: []string{
				"💰 **Veräußerungsgewinn versteuern**: Tarifbegünstigung nach § 34 EStG kann Steuerlast halbieren.",
				"🏢 **Asset Deal vs. Share Deal**: Asset Deal = höhere Steuer, aber bessere Abschreibungen für Käufer.",
				"📊 **Earn-Out-Klausel**: Gestaffelte Zahlung reduziert Steuerlast und Risiko.",
				"💡 **Freibetrag nutzen**: Bei Schenkung von Anteilen (z.B. an langjährige Mitarbeiter) können Freibeträge greifen.",
			},
			Organizational: []string{
				"💵 **Finanzierung klären**: 48% der Nachfolger haben Finanzierungsprobleme - Banken, Verkäuferdarlehen, Private Equity?",
				"📈 **Realistische Bewertung**: 34% scheitern an überzogenen Preisvorstellungen - nutzen Sie Gutachter.",
				"⏳ **Übergangszeit**: Bleiben Sie 1-2 Jahre beratend zur Verfügung (gegen Honorar).",
				"🎯 **Earn-Out-Modell**: Kaufpreis teilweise erfolgsabhängig gestalten - motiviert beide Seiten.",
			},
		},
		risks: []string{
			"⚠️ 48% der Nachfolger haben Finanzierungsschwierigkeiten",
			"⚠️ 34% scheitern an überzogenen Kaufpreisvorstellungen",
			"⚠️ Geschäftsführer-Fähigkeiten vs. Fach-Expertise - nicht jeder gute Techniker ist ein guter Chef",
			"⚠️ Finanzierungsrisiko - wenn die Bank abspringt oder Käufer zahlungsunfähig wird",
		},
		opportunities: []string{
			"✅ Mitarbeiter kennen Unternehmen, Kunden und Prozesse",
			"✅ Hohe Kontinuität und Stabilität",
			"✅ Verkäuferdarlehen kann attraktive Verzinsung bieten",
			"✅ Ihr Lebenswerk wird weitergeführt von Menschen, die Sie schätzen",
		},
	},

	model.ScenarioExternalLeadership: {
		perspectives: model.Perspectives{
			Emotional: []string{
				"🌟 **Externe Geschäftsführung** - Sie trennen Eigentum und Führung.",
				"🎯 **Frischer Wind**: \"Frischer Wind von außen bringt neue Perspektiven\"",
				"💼 **Eigentümerrolle**: Sie bleiben Eigentümer, delegieren aber die operative Führung.",
				"🔄 **Kulturwandel**: Bereiten Sie sich und Ihre Mitarbeiter auf Veränderungen vor.",
			},
			Legal: []string{
				"📝 **Geschäftsführervertrag**: Klare Kompetenzen, Vergütung, Zielvereinbarungen, Kündigungsfristen.",
				"⚖️ **Governance-Struktur**: Beirat oder Aufsichtsrat zur Kontrolle einrichten.",
				"🔒 **Wettbewerbsverbot**: Schützen Sie Ihr Know-how durch Verschwiegenheits- und Wettbewerbsklauseln.",
				"🆘 **Notfallplan**: Was passiert, wenn der neue GF ausfällt oder scheitert?",
			},
			Tax: []string{
				"💰 **Gehalt des GF steuerlich absetzbar**: Die Geschäftsführer-Vergütung reduziert Ihren Gewinn.",
				"🏢 **Gewinnausschüttungen**: Als Eigentümer erhalten Sie weiterhin Dividenden (Abgeltungssteuer 25%).",
				"📊 **Pensionszusage möglich**: Externe GF können Pensionszusagen erhalten - steuerlich optimiert.",
				"💡 **Verlagerung der Steuerlast**: Geschäftsführer-Gehalt wird beim GF versteuert, nicht bei Ihnen.",
			},
			Organizational: []string{
				"🔍 **Headhunter einschalten**: Professionelle Suche erhöht Erfolgsquote erheblich.",
				"📚 **Einarbeitungsphase 6-12 Monate**: Begleiten Sie den neuen GF intensiv.",
				"🎯 **Zielvereinbarungen**: SMART-Ziele mit klaren KPIs (Umsatz, Marge, Kundenzufriedenheit).",
				"🔄 **Regelmäßige Evaluierung**: Quartalsweise Reviews und jährliche Zielgespräche.",
			},
		},
		risks: []string{
			"⚠️ Kulturelle Passung - externe Manager müssen zur Unternehmenskultur passen",
			"⚠️ Loyalität - externer GF hat nicht dieselbe emotionale Bindung",
			"⚠️ Wissensabfluss - Schutz von Betriebsgeheimnissen wichtig",
			"⚠️ Kosten - Headhunter und attraktive Vergütung sind teuer",
		},
		opportunities: []string{
			"✅ Neue Ideen und frische Perspektiven",
			"✅ Sie bleiben Eigentümer und profitieren vom Gewinn",
			"✅ Professionalisierung der Führung",
			"✅ Sie gewinnen Freiheit bei Erhalt des Vermögens",
		},
	},

	model.ScenarioSaleOrMerger: {
		perspectives: model.Perspectives{
			Emotional: []string{
				"💼 **Unternehmensverkauf / M&A** - Sie planen einen externen Verkauf.",
				"🎯 **Neuanfang**: \"Ein guter Deal erfordert realistische Bewertung und gründliche Due Diligence\"",
				"💭 **Abschied nehmen**: Der Verkauf bedeutet einen klaren Schnitt - bereiten Sie sich emotional vor.",
				"🔄 **Neue Perspektiven**: Was möchten Sie nach dem Verkauf erreichen? Ehrenamt, Reisen, neues Business?",
			},
			Legal: []string{
				"📝 **Due Diligence vorbereiten**: Käufer prüft Verträge, Verbindlichkeiten, Rechtsstreitigkeiten, IP-Rechte.",
				"🏢 **Asset Deal vs. Share Deal**: Share Deal = Käufer übernimmt alle Risiken. Asset Deal = Sie behalten Altlasten.",
				"⚖️ **Kaufvertrag und Garantien**: Welche Garantien geben Sie? Für welchen Zeitraum haften Sie?",
				"🔒 **Kartellrecht prüfen**: Bei größeren Deals kann Bundeskartellamt zustimmen müssen.",
				"👥 **Arbeitnehmerrechte**: Betriebsübergang nach § 613a BGB - Mitarbeiter müssen informiert werden.",
			},
			Tax: []string{
				"💰 **Veräußerungsgewinn**: Tarifbegünstigung § 34 EStG (ca. 28% statt 42% Steuersatz) bei Betriebsaufgabe.",
				"🏢 **Share Deal Vorteile**: Sperrfrist beachten, aber oft steuerlich günstiger für Verkäufer.",
				"📊 **Asset Deal Nachteile**: Hohe Steuerlast für Sie, aber Käufer kann Anlagevermögen neu abschreiben.",
				"💡 **Steuerberater einschalten**: Die Steueroptimierung kann mehrere 100.000 € Unterschied machen.",
				"🎯 **Freibetrag bei Betriebsveräußerung**: Bis 45.000 € steuerfrei (gestaffelt bis Alter 55+).",
			},
			Organizational: []string{
				"🔍 **M&A-Berater beauftragen**: Professionelle Begleitung erhöht Verkaufspreis um durchschnittlich 15-20%.",
				"📈 **Unternehmensbewertung**: Ertragswert, Multiplikator-Verfahren, DCF - holen Sie mehrere Gutachten ein.",
				"💵 **Käuferkreis definieren**: Strategischer Käufer (zahlt mehr) oder Finanzinvestor (schnellerer Deal)?",
				"⏳ **Verkaufsprozess 6-18 Monate**: Vorbereitung, Käufersuche, Due Diligence, Vertragsverhandlung.",
				"🎯 **Earn-Out-Klausel**: Teil des Kaufpreises erfolgsabhängig - kann Bewertungslücke schließen.",
			},
		},
		attachment: []string{
			"❤️ **Hohe Bindung beachten**: Der Abschied wird emotional - planen Sie Übergangszeit und Rituale ein.",
			"🔄 **Legacy sichern**: Verhandeln Sie Klauseln zum Erhalt von Markennamen, Standort, Arbeitsplätzen.",
		},
		risks: []string{
			"⚠️ 34% scheitern an überzogenen Kaufpreisvorstellungen - seien Sie realistisch",
			"⚠️ Due Diligence deckt oft Probleme auf - bereiten Sie sich vor",
			"⚠️ Käufer kann Mitarbeiter kündigen oder Standort schließen",
			"⚠️ Vertraulichkeit - Deal kann platzen oder Wettbewerber erfährt Details",
		},
		opportunities: []string{
			"✅ 48% planen 2024 externen Verkauf - der Markt ist aktiv",
			"✅ Klarer Schnitt - Sie sind finanziell abgesichert",
			"✅ Strategische Käufer zahlen oft Premium (Synergieeffekte)",
			"✅ Ihr Lebenswerk kann in größerem Kontext weiterwachsen",
		},
	},
}

var priorities = map[model.Timeframe]string{
	model.TimeframeUnder2Y: "HOCH - Dringender Handlungsbedarf! Sie haben weniger als 2 Jahre Zeit.",
	model.Timeframe2To5Y:   "MITTEL - Strukturierte Planung erforderlich. Sie haben ein gutes Zeitfenster.",
	model.TimeframeOver5Y:  "NIEDRIG - Gute Ausgangslage. Sie haben ausreichend Zeit für eine strategische Planung.",
}

var timelines = map[model.Timeframe]string{
	model.TimeframeUnder2Y: `**Phase 1 (0-6 Monate): SOFORT**
- Notfallplan erstellen
- Rechtliche Basics klären (Testament, Vollmachten)
- Grobe Unternehmensbewertung
- Erste Gespräche mit Nachfolger / Käufersuche starten

**Phase 2 (6-18 Monate): INTENSIV**
- Detaillierte Due Diligence Vorbereitung
- Vertragsverhandlungen
- Steueroptimierung umsetzen
- Wissenstransfer starten

**Phase 3 (18-24 Monate): ÜBERGABE**
- Vertragsabschluss
- Übergabe vollziehen
- Begleitphase mit klarem Ausstiegsdatum`,

	model.Timeframe2To5Y: `**Phase 1 (Jahr 1-2): VORBEREITUNG**
- Notfallplan und Testament
- Unternehmen analysieren und optimieren
- Nachfolger identifizieren / Käufersuche
- Erste steuerliche Weichenstellungen

**Phase 2 (Jahr 2-4): QUALIFIZIERUNG**
- Nachfolger einarbeiten / Due Diligence
- Schrittweise Verantwortungsübertragung
- Vertragswerke vorbereiten
- Steuerstrategie finalisieren

**Phase 3 (Jahr 4-5): ÜBERGABE**
- Formale Übergabe
- Begleitphase 6-12 Monate
- Rollenwechsel vollziehen`,

	model.TimeframeOver5Y: `**Phase 1 (Jahr 1-3): STRATEGISCHE PLANUNG**
- Nachfolgestrategie definieren
- Unternehmen zukunftsfähig machen
- Notfallplan und Testament
- Erste steuerliche Optimierungen (Freibeträge alle 10 Jahre)

**Phase 2 (Jahr 3-5): NACHFOLGER ENTWICKELN**
- Identifikation und Qualifizierung
- Schrittweise Verantwortungsübertragung
- Strukturen professionalisieren
- Due Diligence vorbereiten

**Phase 3 (Jahr 5+): ÜBERGABE**
- Formale Übergabe zu optimal geplantem Zeitpunkt
- Begleitphase nach Bedarf
- Finanzielle und steuerliche Optimierung voll ausschöpfen`,
}

var commonNextSteps = []string{
	"1️⃣ **Notfallplan erstellen**: Vollmachten, Notfall-Testament, Vertretungsregelungen (innerhalb 4 Wochen)",
	"2️⃣ **Rechtliche Basics klären**: Fachanwalt für Gesellschaftsrecht konsultieren",
	"3️⃣ **Steuerberater einschalten**: Nachfolge-Experten mit Schwerpunkt Unternehmensnachfolge",
	"4️⃣ **Grobe Unternehmensbewertung**: Orientierung für Verhandlungen / Finanzplanung",
	"5️⃣ **Familienworkshop**: Erwartungen, Wünsche, Konflikte früh ansprechen",
}

var urgentNextSteps = []string{
	"6️⃣ **DRINGEND: Käufersuche / Nachfolger-Entscheidung**: Sie haben wenig Zeit!",
	"7️⃣ **Due Diligence Vorbereitung**: Unterlagen systematisch zusammenstellen",
}

var plannedNextSteps = []string{
	"6️⃣ **Nachfolgersuche strukturieren**: Profil definieren, Kandidaten identifizieren",
	"7️⃣ **Unternehmen fit machen**: Prozesse dokumentieren, Bilanz optimieren",
}

var successFactors = []string{
	"✅ **Frühzeitige Planung**: Statistisch erfolgreicher bei Vorlaufzeit 5+ Jahre",
	"✅ **Professionelle Beratung**: Fachanwalt, Steuerberater, Nachfolgeberater einbinden",
	"✅ **Transparente Kommunikation**: Mit Familie, Mitarbeitern, Kunden",
	"✅ **Unternehmen fit machen**: Prozesse, Dokumentation, Bilanz bereinigen",
	"✅ **Emotionen managen**: Coaching oder Supervision kann helfen",
	"✅ **Realistische Erwartungen**: Bei Bewertung, Zeitrahmen und Nachfolger-Qualifikation",
}
