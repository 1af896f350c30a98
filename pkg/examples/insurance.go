package examples

func getInsuranceExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:         "Verzekeringen",
			Description:  "Klanten, polissen en dekkingen met twee codelijsten",
			CatalogFile:  "data.csv",
			CodelistFile: "Codelist.afm.csv",
			Rows: []ExampleRow{
				{Kind: "E", EntityCode: "KLT", Name: "Klant", Description: "Een natuurlijk persoon of organisatie die een polis afsluit"},
				{Kind: "A", EntityCode: "KLT", AttributeCode: "NAAM", Name: "Klantnaam", Description: "Volledige naam van de klant", Datatype: "A0", Format: "AN..70"},
				{Kind: "A", EntityCode: "KLT", AttributeCode: "GEBDAT", Name: "Geboortedatum", Datatype: "D1", Format: "N8"},
				{Kind: "A", EntityCode: "KLT", AttributeCode: "ACTF", Name: "Actief", Description: "Geeft aan of de klant nog actief is", Datatype: "JN", Format: "AN1", Codelist: "JNCL"},
				{Kind: "E", EntityCode: "POL", Name: "Polis", Description: "Verzekeringsovereenkomst tussen klant en verzekeraar"},
				{Kind: "A", EntityCode: "POL", AttributeCode: "NR", Name: "Polisnummer", Datatype: "A0", Format: "AN..20"},
				{Kind: "A", EntityCode: "POL", AttributeCode: "INGDAT", Name: "Ingangsdatum", Datatype: "D1", Format: "N8"},
				{Kind: "A", EntityCode: "POL", AttributeCode: "PREM", Name: "Premie", Description: "Jaarpremie inclusief assurantiebelasting", Datatype: "B2", Format: "N..12,2"},
				{Kind: "A", EntityCode: "POL", AttributeCode: "BETTERM", Name: "Betalingstermijn", Datatype: "A0", Format: "AN2", Codelist: "BTCL"},
				{Kind: "E", EntityCode: "DEK", Name: "Dekking", Description: "Een verzekerd risico binnen een polis"},
				{Kind: "A", EntityCode: "DEK", AttributeCode: "EIGRIS", Name: "Eigen risico", Datatype: "B2", Format: "N..12,2"},
				{Kind: "A", EntityCode: "DEK", AttributeCode: "PERC", Name: "Dekkingspercentage", Datatype: "P3", Format: "N..6,3"},
				{Kind: "A", EntityCode: "DEK", AttributeCode: "OPM", Name: "Opmerkingen", Datatype: "ME"},
				{Kind: "A", EntityCode: "OBJ", AttributeCode: "OMS", Name: "Objectomschrijving", Description: "Attribuut zonder entiteit in deze catalogus", Datatype: "A0"},
			},
			Codelists: []ExampleCode{
				{Codelist: "JNCL", Code: "J", Description: "Ja", Active: "J"},
				{Codelist: "JNCL", Code: "N", Description: "Nee", Active: "J"},
				{Codelist: "BTCL", Code: "01", Description: "Maandelijks", Active: "J"},
				{Codelist: "BTCL", Code: "03", Description: "Per kwartaal", Active: "J"},
				{Codelist: "BTCL", Code: "06", Description: "Per halfjaar", Active: "N"},
				{Codelist: "BTCL", Code: "12", Description: "Jaarlijks", Active: "J"},
			},
		},
	}
}
