package dataset

const examCSV = "Session;Numero d'etablissement;Type d'etablissement;Patronyme;Secteur d'enseignement;Libellé commune;Libellé département;Libellé région;Inscrits;Admis;Admis Mention très bien;Taux de réussite\n" +
	"2020;0750001A;COLLEGE;JEAN MOULIN;PUBLIC;PARIS;PARIS;ILE-DE-FRANCE;100;98;12;98,0%\n" +
	"2020;0750002B;COLLEGE;SAINT LOUIS;PRIVE;PARIS;PARIS;ILE-DE-FRANCE;20;19;4;96,5%\n" +
	"2019;0940003C;COLLEGE;VOLTAIRE;PUBLIC;VINCENNES;VAL-DE-MARNE;ILE-DE-FRANCE;;90;5;99,0%\n" +
	";;;;;;;;;;;\n"

const geoCSV = "Code établissement;Secteur Public/Privé;Longitude;Latitude\n" +
	"0750001A;Public;2,3522;48,8566\n" +
	"0750002B;Privé;2.2945;48.8584\n" +
	"0750002B;Public;0;0\n" +
	"0940003C;Public;;\n"
